package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Owhab/nexacms-sub002/internal/data/repos"
	"github.com/Owhab/nexacms-sub002/internal/data/repos/testutil"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/security"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/validation"
)

func newHeroService(t *testing.T) *heroService {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewHeroService(log, repos.NewHeroSectionRepo(db, log), nil, nil, nil, nil).(*heroService)
	svc.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return svc
}

func defaultRecord(t *testing.T, v schema.Variant, id string) map[string]any {
	t.Helper()
	p, err := schema.DefaultRegistry().Defaults(v)
	if err != nil {
		t.Fatalf("Defaults(%s): %v", v, err)
	}
	p.Common().ID = id
	m, err := schema.ToMap(p)
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	return m
}

func expectValidationFailure(t *testing.T, err error, code validation.Code) validation.Result {
	t.Helper()
	var vf *ValidationFailedError
	if !errors.As(err, &vf) {
		t.Fatalf("expected *ValidationFailedError, got %v", err)
	}
	if !validation.HasCode(vf.Result.Errors, code) {
		t.Fatalf("expected %s among %+v", code, vf.Result.Errors)
	}
	return vf.Result
}

func TestHeroSaveAndGet(t *testing.T) {
	svc := newHeroService(t)
	ctx := context.Background()

	rec, res, err := svc.Save(ctx, "home", defaultRecord(t, schema.VariantCentered, ""))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !res.IsValid || rec.Version != 1 || rec.Props.Common().ID != "home" {
		t.Fatalf("unexpected save result: version=%d res=%+v", rec.Version, res)
	}

	rec, _, err = svc.Save(ctx, "home", defaultRecord(t, schema.VariantCentered, "home"))
	if err != nil {
		t.Fatalf("Save (second): %v", err)
	}
	if rec.Version != 2 {
		t.Fatalf("expected version 2, got %d", rec.Version)
	}

	got, err := svc.Get(ctx, "home")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Props.Kind() != schema.VariantCentered {
		t.Fatalf("unexpected variant %s", got.Props.Kind())
	}

	_, err = svc.Get(ctx, "missing")
	expectStatus(t, err, http.StatusNotFound, CodeHeroNotFound)
}

func TestHeroSaveRejectsUnsafeAndInvalidData(t *testing.T) {
	svc := newHeroService(t)
	ctx := context.Background()

	body := defaultRecord(t, schema.VariantCentered, "home")
	body["title"] = map[string]any{"text": "<script>alert(1)</script>Hello", "tag": "h1"}
	_, _, err := svc.Save(ctx, "home", body)
	expectValidationFailure(t, err, validation.CodeMaliciousContent)

	body = defaultRecord(t, schema.VariantCentered, "home")
	delete(body, "variant")
	_, _, err = svc.Save(ctx, "home", body)
	expectValidationFailure(t, err, validation.CodeRequiredField)

	body = defaultRecord(t, schema.VariantCentered, "other")
	_, _, err = svc.Save(ctx, "home", body)
	expectStatus(t, err, http.StatusBadRequest, CodeIDMismatch)

	if _, err := svc.Get(ctx, "home"); err == nil {
		t.Fatalf("rejected saves must not persist")
	}
}

func TestHeroUpdateField(t *testing.T) {
	svc := newHeroService(t)
	ctx := context.Background()
	if _, _, err := svc.Save(ctx, "home", defaultRecord(t, schema.VariantCentered, "home")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rec, _, err := svc.UpdateField(ctx, "home", "title.text", "Launch day")
	if err != nil {
		t.Fatalf("UpdateField: %v", err)
	}
	if got := rec.Props.(*schema.CenteredProps).Title.Text; got != "Launch day" {
		t.Fatalf("title not updated: %q", got)
	}

	_, _, err = svc.UpdateField(ctx, "home", "variant", "minimal")
	expectStatus(t, err, http.StatusBadRequest, CodeReadOnlyField)

	_, _, err = svc.UpdateField(ctx, "home", "title..text", "x")
	expectStatus(t, err, http.StatusBadRequest, CodeInvalidPath)

	_, _, err = svc.UpdateField(ctx, "home", "title.text", "")
	expectValidationFailure(t, err, validation.CodeRequiredField)
}

func TestHeroMigratePreviewAndApply(t *testing.T) {
	svc := newHeroService(t)
	ctx := context.Background()
	if _, _, err := svc.Save(ctx, "home", defaultRecord(t, schema.VariantMinimal, "home")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := svc.Migrate(ctx, "home", MigrateInput{TargetVariant: "centered"})
	if err != nil {
		t.Fatalf("Migrate (preview): %v", err)
	}
	if out.Applied || out.Preview == nil || len(out.Preview.WillLose) == 0 {
		t.Fatalf("expected a preview listing lost data, got %+v", out)
	}
	if got, _ := svc.Get(ctx, "home"); got.Props.Kind() != schema.VariantMinimal {
		t.Fatalf("preview must not persist")
	}

	out, err = svc.Migrate(ctx, "home", MigrateInput{TargetVariant: "centered", Strategy: "conservative", Apply: true})
	if err != nil {
		t.Fatalf("Migrate (apply): %v", err)
	}
	if !out.Applied || out.Record == nil || out.Record.Props.Kind() != schema.VariantCentered {
		t.Fatalf("unexpected apply outcome: %+v", out)
	}
	if out.Record.Props.Common().ID != "home" {
		t.Fatalf("migration must keep the id")
	}

	_, err = svc.Migrate(ctx, "home", MigrateInput{TargetVariant: "carousel", Apply: true})
	expectStatus(t, err, http.StatusBadRequest, CodeInvalidVariant)

	_, err = svc.Migrate(ctx, "home", MigrateInput{TargetVariant: "minimal", Strategy: "reckless"})
	expectStatus(t, err, http.StatusBadRequest, CodeInvalidStrategy)
}

func TestHeroDuplicate(t *testing.T) {
	svc := newHeroService(t)
	ctx := context.Background()
	if _, _, err := svc.Save(ctx, "home", defaultRecord(t, schema.VariantCentered, "home")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rec, err := svc.Duplicate(ctx, "home", DuplicateInput{})
	if err != nil {
		t.Fatalf("Duplicate: %v", err)
	}
	if id := rec.Props.Common().ID; id != "home-copy-1700000000000" {
		t.Fatalf("unexpected copy id %q", id)
	}
	if title := rec.Props.(*schema.CenteredProps).Title.Text; !strings.HasPrefix(title, "Copy of ") {
		t.Fatalf("expected prefixed title, got %q", title)
	}

	_, err = svc.Duplicate(ctx, "home", DuplicateInput{})
	expectStatus(t, err, http.StatusConflict, CodeHeroExists)

	rows, err := svc.List(ctx, "centered", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 stored sections, got %d", len(rows))
	}
}

func TestHeroDuplicateWithoutMedia(t *testing.T) {
	svc := newHeroService(t)
	ctx := context.Background()
	keep := false
	for _, v := range []schema.Variant{schema.VariantSplitScreen, schema.VariantVideo, schema.VariantGallery} {
		id := "media-" + string(v)
		if _, _, err := svc.Save(ctx, id, defaultRecord(t, v, id)); err != nil {
			t.Fatalf("Save(%s): %v", v, err)
		}
		rec, err := svc.Duplicate(ctx, id, DuplicateInput{ID: id + "-bare", PreserveMedia: &keep})
		if err != nil {
			t.Fatalf("Duplicate(%s) without media: %v", v, err)
		}
		placeholder, _ := schema.PlaceholderMedia(v)
		switch p := rec.Props.(type) {
		case *schema.SplitScreenProps:
			if p.Media.URL != placeholder.URL {
				t.Fatalf("split-screen media = %q, want placeholder", p.Media.URL)
			}
		case *schema.VideoProps:
			if p.Video.URL != placeholder.URL {
				t.Fatalf("video = %q, want placeholder", p.Video.URL)
			}
		case *schema.GalleryProps:
			if len(p.Gallery) != 1 {
				t.Fatalf("gallery has %d items, want the placeholder only", len(p.Gallery))
			}
		}
	}
}

func TestHeroValidateBatchAndCompatibility(t *testing.T) {
	svc := newHeroService(t)
	ctx := context.Background()

	results, err := svc.ValidateBatch(ctx, []any{
		defaultRecord(t, schema.VariantGallery, "g"),
		"not an object",
	})
	if err != nil {
		t.Fatalf("ValidateBatch: %v", err)
	}
	if len(results) != 2 || !results[0].IsValid || results[1].IsValid {
		t.Fatalf("unexpected batch results: %+v", results)
	}

	out, err := svc.Compatibility("minimal", "centered")
	if err != nil {
		t.Fatalf("Compatibility: %v", err)
	}
	if !out.Report.IsSupported {
		t.Fatalf("expected minimal -> centered to be supported")
	}
	_, err = svc.Compatibility("minimal", "nope")
	expectStatus(t, err, http.StatusBadRequest, CodeInvalidVariant)
}

func pngUpload(t *testing.T) security.Upload {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return security.Upload{Filename: "hero.png", ContentType: "image/png", Size: int64(buf.Len()), Data: buf.Bytes()}
}

func TestHeroValidateMedia(t *testing.T) {
	svc := newHeroService(t)
	ctx := context.Background()

	res, err := svc.ValidateMedia(ctx, pngUpload(t), "")
	if err != nil {
		t.Fatalf("ValidateMedia: %v", err)
	}
	if !res.IsValid || res.Info == nil || res.Info.Width != 8 {
		t.Fatalf("unexpected upload result: %+v", res)
	}

	_, err = svc.ValidateMedia(ctx, security.Upload{Filename: "a.txt", ContentType: "text/plain"}, "")
	expectStatus(t, err, http.StatusBadRequest, CodeInvalidMediaType)
}
