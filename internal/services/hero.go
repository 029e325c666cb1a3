package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/datatypes"

	"github.com/Owhab/nexacms-sub002/internal/data/repos"
	types "github.com/Owhab/nexacms-sub002/internal/domain"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/duplication"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/migration"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/security"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/validation"
	"github.com/Owhab/nexacms-sub002/internal/observability"
	"github.com/Owhab/nexacms-sub002/internal/platform/apierr"
	"github.com/Owhab/nexacms-sub002/internal/platform/ctxutil"
	"github.com/Owhab/nexacms-sub002/internal/platform/dbctx"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

const (
	CodeHeroNotFound     = "HERO_NOT_FOUND"
	CodeHeroExists       = "HERO_EXISTS"
	CodeIDMismatch       = "ID_MISMATCH"
	CodeInvalidVariant   = "INVALID_VARIANT"
	CodeInvalidStrategy  = "INVALID_STRATEGY"
	CodeInvalidPath      = "INVALID_PATH"
	CodeReadOnlyField    = "READ_ONLY_FIELD"
	CodeMigrationFailed  = "MIGRATION_FAILED"
	CodeInvalidMediaType = "INVALID_MEDIA_TYPE"
	CodeValidationFailed = "VALIDATION_FAILED"
)

// ValidationFailedError blocks a write because the record has error-level findings.
type ValidationFailedError struct {
	Result validation.Result
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("hero section failed validation with %d error(s)", len(e.Result.Errors))
}

type HeroRecord struct {
	Props     schema.Props `json:"props"`
	Version   int          `json:"version"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type MigrateInput struct {
	TargetVariant string
	Strategy      string
	Apply         bool
}

type MigrateOutcome struct {
	Applied    bool               `json:"applied"`
	Preview    *migration.Preview `json:"preview,omitempty"`
	Result     *migration.Result  `json:"result,omitempty"`
	Validation *validation.Result `json:"validation,omitempty"`
	Record     *HeroRecord        `json:"record,omitempty"`
}

type DuplicateInput struct {
	ID              string
	TitlePrefix     *string
	PreserveMedia   *bool
	PreserveButtons *bool
}

type CompatibilityOutcome struct {
	Properties migration.CompatibilityMap `json:"properties"`
	Report     migration.Report           `json:"report"`
}

type HeroService interface {
	Variants() []schema.VariantDefinition
	Compatibility(from, to string) (*CompatibilityOutcome, error)
	Validate(ctx context.Context, raw any) (validation.Result, error)
	ValidateBatch(ctx context.Context, raws []any) ([]validation.Result, error)
	List(ctx context.Context, variant string, limit int) ([]*types.HeroSection, error)
	Get(ctx context.Context, id string) (*HeroRecord, error)
	Save(ctx context.Context, id string, raw map[string]any) (*HeroRecord, validation.Result, error)
	UpdateField(ctx context.Context, id, path string, value any) (*HeroRecord, validation.Result, error)
	Migrate(ctx context.Context, id string, in MigrateInput) (*MigrateOutcome, error)
	Duplicate(ctx context.Context, id string, in DuplicateInput) (*HeroRecord, error)
	ValidateMedia(ctx context.Context, up security.Upload, mediaType string) (security.UploadResult, error)
}

type heroService struct {
	log        *logger.Logger
	repo       repos.HeroSectionRepo
	registry   *schema.Registry
	validator  *validation.Validator
	security   *security.Validator
	migrations *migration.Engine
	now        func() time.Time
}

func NewHeroService(
	log *logger.Logger,
	repo repos.HeroSectionRepo,
	registry *schema.Registry,
	validator *validation.Validator,
	sec *security.Validator,
	migrations *migration.Engine,
) HeroService {
	if registry == nil {
		registry = schema.DefaultRegistry()
	}
	if validator == nil {
		validator = validation.NewValidator(registry, validation.DefaultValidatorSet())
	}
	if sec == nil {
		sec = security.NewValidator(security.DefaultPolicy(), nil)
	}
	if migrations == nil {
		migrations = migration.NewEngine(registry)
	}
	return &heroService{
		log:        log.With("service", "HeroService"),
		repo:       repo,
		registry:   registry,
		validator:  validator,
		security:   sec,
		migrations: migrations,
		now:        time.Now,
	}
}

func (s *heroService) Variants() []schema.VariantDefinition {
	return s.registry.Definitions()
}

func parseVariant(field, raw string) (schema.Variant, error) {
	v, err := schema.ParseVariant(strings.TrimSpace(raw))
	if err != nil {
		return "", apierr.BadRequest(CodeInvalidVariant, "unknown hero variant %q", raw).
			WithDetails(apierr.Detail{Field: field, Message: "unknown variant"})
	}
	return v, nil
}

func (s *heroService) Compatibility(from, to string) (*CompatibilityOutcome, error) {
	fv, err := parseVariant("from", from)
	if err != nil {
		return nil, err
	}
	tv, err := parseVariant("to", to)
	if err != nil {
		return nil, err
	}
	return &CompatibilityOutcome{
		Properties: migration.GetPropertyCompatibilityMap(fv, tv),
		Report:     s.migrations.ValidateMigrationCompatibility(fv, tv),
	}, nil
}

// check runs the save pipeline without persisting: boundary checks and
// sanitization, decoding, then whole-record validation.
func (s *heroService) check(raw any) (schema.Props, validation.Result) {
	return s.finish(s.security.ValidateHeroSectionData(raw))
}

func (s *heroService) finish(sec security.Result) (schema.Props, validation.Result) {
	findings := append(append([]validation.ValidationError{}, sec.Errors...), sec.Warnings...)
	if sec.SanitizedData == nil {
		return nil, validation.NewResult(findings)
	}
	props, err := schema.DecodeMap(sec.SanitizedData)
	if err != nil {
		if !hasField(sec.Errors, "variant") {
			findings = append(findings, validation.Errorf("", validation.CodeInvalidFormat, err.Error()))
		}
		return nil, validation.NewResult(findings)
	}
	rec := s.validator.ValidateHeroSection(props)
	findings = mergeFindings(findings, rec.Errors, rec.Warnings)
	return props, validation.NewResult(findings)
}

func hasField(list []validation.ValidationError, field string) bool {
	for _, e := range list {
		if e.Field == field {
			return true
		}
	}
	return false
}

// mergeFindings appends lists, dropping entries that repeat a field and code.
func mergeFindings(base []validation.ValidationError, more ...[]validation.ValidationError) []validation.ValidationError {
	type key struct {
		field string
		code  validation.Code
	}
	seen := make(map[key]bool, len(base))
	for _, e := range base {
		seen[key{e.Field, e.Code}] = true
	}
	for _, list := range more {
		for _, e := range list {
			k := key{e.Field, e.Code}
			if seen[k] {
				continue
			}
			seen[k] = true
			base = append(base, e)
		}
	}
	return base
}

func (s *heroService) Validate(ctx context.Context, raw any) (validation.Result, error) {
	_, res := s.check(raw)
	return res, nil
}

// ValidateBatch runs the boundary checks concurrently, then decodes and
// validates each record.
func (s *heroService) ValidateBatch(ctx context.Context, raws []any) ([]validation.Result, error) {
	secs, err := s.security.ValidateBatch(ctx, raws)
	if err != nil {
		return nil, err
	}
	out := make([]validation.Result, len(secs))
	for i, sec := range secs {
		_, out[i] = s.finish(sec)
	}
	return out, nil
}

func (s *heroService) List(ctx context.Context, variant string, limit int) ([]*types.HeroSection, error) {
	if variant != "" {
		if _, err := parseVariant("variant", variant); err != nil {
			return nil, err
		}
	}
	rows, err := s.repo.List(dbctx.Context{Ctx: ctx}, variant, limit)
	if err != nil {
		return nil, fmt.Errorf("list hero sections: %w", err)
	}
	return rows, nil
}

func (s *heroService) load(ctx context.Context, id string) (schema.Props, *types.HeroSection, error) {
	row, err := s.repo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, nil, fmt.Errorf("load hero section: %w", err)
	}
	if row == nil {
		return nil, nil, apierr.NotFound(CodeHeroNotFound, "hero section %s", id)
	}
	props, err := schema.Decode(row.Data)
	if err != nil {
		return nil, nil, fmt.Errorf("decode stored hero section %s: %w", id, err)
	}
	return props, row, nil
}

func (s *heroService) Get(ctx context.Context, id string) (*HeroRecord, error) {
	props, row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &HeroRecord{Props: props, Version: row.Version, UpdatedAt: row.UpdatedAt}, nil
}

func (s *heroService) persist(ctx context.Context, props schema.Props) (*HeroRecord, error) {
	data, err := schema.Encode(props)
	if err != nil {
		return nil, fmt.Errorf("encode hero section: %w", err)
	}
	row := &types.HeroSection{
		ID:      props.Common().ID,
		Variant: props.Kind().String(),
		Data:    datatypes.JSON(data),
	}
	if rd := ctxutil.GetRequestData(ctx); rd != nil {
		uid := rd.UserID
		row.UpdatedBy = &uid
	}
	dbc := dbctx.Context{Ctx: ctx}
	if err := s.repo.Upsert(dbc, row); err != nil {
		return nil, fmt.Errorf("save hero section: %w", err)
	}
	stored, err := s.repo.GetByID(dbc, row.ID)
	if err != nil {
		return nil, fmt.Errorf("reload hero section: %w", err)
	}
	if stored == nil {
		return nil, fmt.Errorf("hero section %s vanished after save", row.ID)
	}
	return &HeroRecord{Props: props, Version: stored.Version, UpdatedAt: stored.UpdatedAt}, nil
}

// Save validates raw and stores it under id. Any error-level finding blocks
// the write and is returned as *ValidationFailedError.
func (s *heroService) Save(ctx context.Context, id string, raw map[string]any) (*HeroRecord, validation.Result, error) {
	ctx, span := observability.StartSpan(ctx, "HeroService.Save", attribute.String("hero.id", id))
	defer span.End()

	body := make(map[string]any, len(raw)+1)
	for k, v := range raw {
		body[k] = v
	}
	switch bodyID, _ := body["id"].(string); {
	case bodyID == "":
		body["id"] = id
	case bodyID != id:
		return nil, validation.Result{}, apierr.BadRequest(CodeIDMismatch, "body id %q does not match path id %q", bodyID, id).
			WithDetails(apierr.Detail{Field: "id", Message: "must match the section id in the path"})
	}

	props, res := s.check(body)
	if !res.IsValid {
		s.log.Warn("Hero section rejected", "hero_id", id, "errors", len(res.Errors))
		return nil, res, &ValidationFailedError{Result: res}
	}
	rec, err := s.persist(ctx, props)
	if err != nil {
		span.RecordError(err)
		return nil, res, err
	}
	span.SetAttributes(attribute.String("hero.variant", props.Kind().String()))
	s.log.Info("Hero section saved", "hero_id", id, "variant", props.Kind(), "version", rec.Version)
	return rec, res, nil
}

func (s *heroService) UpdateField(ctx context.Context, id, path string, value any) (*HeroRecord, validation.Result, error) {
	props, _, err := s.load(ctx, id)
	if err != nil {
		return nil, validation.Result{}, err
	}
	updated, err := schema.UpdateField(props, path, value)
	if err != nil {
		code := CodeInvalidPath
		if errors.Is(err, schema.ErrReadOnlyField) {
			code = CodeReadOnlyField
		}
		return nil, validation.Result{}, apierr.BadRequest(code, "%v", err).
			WithDetails(apierr.Detail{Field: path, Message: err.Error()})
	}
	m, err := schema.ToMap(updated)
	if err != nil {
		return nil, validation.Result{}, fmt.Errorf("encode updated hero section: %w", err)
	}
	checked, res := s.check(m)
	if !res.IsValid {
		return nil, res, &ValidationFailedError{Result: res}
	}
	rec, err := s.persist(ctx, checked)
	if err != nil {
		return nil, res, err
	}
	s.log.Info("Hero field updated", "hero_id", id, "path", path, "version", rec.Version)
	return rec, res, nil
}

func (s *heroService) Migrate(ctx context.Context, id string, in MigrateInput) (*MigrateOutcome, error) {
	ctx, span := observability.StartSpan(ctx, "HeroService.Migrate",
		attribute.String("hero.id", id),
		attribute.String("hero.target_variant", in.TargetVariant),
		attribute.Bool("hero.apply", in.Apply),
	)
	defer span.End()

	target, err := parseVariant("targetVariant", in.TargetVariant)
	if err != nil {
		return nil, err
	}
	strategy, err := migration.ParseStrategy(in.Strategy)
	if err != nil {
		return nil, apierr.BadRequest(CodeInvalidStrategy, "%v", err).
			WithDetails(apierr.Detail{Field: "strategy", Message: "must be conservative, balanced or optimized"})
	}
	props, _, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !in.Apply {
		preview := s.migrations.Preview(props, target, strategy)
		return &MigrateOutcome{Preview: &preview}, nil
	}

	res := s.migrations.Migrate(props, target, strategy)
	if !res.Success {
		details := make([]apierr.Detail, 0, len(res.Errors))
		for _, msg := range res.Errors {
			details = append(details, apierr.Detail{Field: "targetVariant", Message: msg})
		}
		s.log.Warn("Hero migration failed", "hero_id", id, "from", props.Kind(), "to", target)
		return nil, apierr.New(http.StatusUnprocessableEntity, CodeMigrationFailed,
			fmt.Errorf("migration from %s to %s failed", props.Kind(), target)).WithDetails(details...)
	}
	out := &MigrateOutcome{Result: &res}
	check := s.validator.ValidateHeroSection(res.MigratedProps)
	out.Validation = &check
	if !check.IsValid {
		return out, &ValidationFailedError{Result: check}
	}
	rec, err := s.persist(ctx, res.MigratedProps)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	out.Applied = true
	out.Record = rec
	s.log.Info("Hero section migrated",
		"hero_id", id,
		"from", props.Kind(),
		"to", target,
		"strategy", strategy.Name,
		"lost", len(res.LostData),
		"added", len(res.AddedDefaults),
	)
	return out, nil
}

func (s *heroService) Duplicate(ctx context.Context, id string, in DuplicateInput) (*HeroRecord, error) {
	props, _, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	var opts []duplication.Option
	if in.ID != "" {
		opts = append(opts, duplication.WithID(in.ID))
	}
	if in.TitlePrefix != nil {
		opts = append(opts, duplication.WithTitlePrefix(*in.TitlePrefix))
	}
	if in.PreserveMedia != nil && !*in.PreserveMedia {
		opts = append(opts, duplication.WithoutMedia())
	}
	if in.PreserveButtons != nil && !*in.PreserveButtons {
		opts = append(opts, duplication.WithoutButtonURLs())
	}
	cp := duplication.Duplicate(props, s.now(), opts...)

	newID := cp.Common().ID
	exists, err := s.repo.Exists(dbctx.Context{Ctx: ctx}, newID)
	if err != nil {
		return nil, fmt.Errorf("check hero id: %w", err)
	}
	if exists {
		return nil, apierr.New(http.StatusConflict, CodeHeroExists, fmt.Errorf("hero section %s already exists", newID)).
			WithDetails(apierr.Detail{Field: "id", Message: "id already in use"})
	}
	if res := s.validator.ValidateHeroSection(cp); !res.IsValid {
		return nil, &ValidationFailedError{Result: res}
	}
	rec, err := s.persist(ctx, cp)
	if err != nil {
		return nil, err
	}
	s.log.Info("Hero section duplicated", "hero_id", id, "copy_id", newID)
	return rec, nil
}

func (s *heroService) ValidateMedia(ctx context.Context, up security.Upload, mediaType string) (security.UploadResult, error) {
	var kind schema.MediaType
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case string(schema.MediaImage):
		kind = schema.MediaImage
	case string(schema.MediaVideo):
		kind = schema.MediaVideo
	case "":
		switch {
		case strings.HasPrefix(up.ContentType, "image/"):
			kind = schema.MediaImage
		case strings.HasPrefix(up.ContentType, "video/"):
			kind = schema.MediaVideo
		}
	}
	if kind == "" {
		return security.UploadResult{}, apierr.BadRequest(CodeInvalidMediaType, "mediaType must be image or video").
			WithDetails(apierr.Detail{Field: "mediaType", Message: "must be image or video"})
	}
	res := s.security.ValidateMediaUpload(ctx, up, kind)
	if !res.IsValid {
		s.log.Warn("Media upload rejected", "filename", up.Filename, "media_type", kind, "errors", len(res.Errors))
	}
	return res, nil
}
