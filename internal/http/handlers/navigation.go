package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Owhab/nexacms-sub002/internal/http/response"
	"github.com/Owhab/nexacms-sub002/internal/modules/navigation"
	"github.com/Owhab/nexacms-sub002/internal/platform/apierr"
	"github.com/Owhab/nexacms-sub002/internal/services"
)

const reorderedMessage = "Navigation items reordered successfully"

type NavigationHandler struct {
	navigation services.NavigationService
}

func NewNavigationHandler(nav services.NavigationService) *NavigationHandler {
	return &NavigationHandler{navigation: nav}
}

func menuIDParam(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("menuId")
	id, err := uuid.Parse(raw)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, CodeInvalidRequest,
			fmt.Errorf("invalid menu id %q", raw),
			apierr.Detail{Field: "menuId", Message: "must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *NavigationHandler) ListMenus(c *gin.Context) {
	menus, err := h.navigation.ListMenus(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"menus": menus})
}

func (h *NavigationHandler) CreateMenu(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}
	menu, err := h.navigation.CreateMenu(c.Request.Context(), services.CreateMenuInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"menu": menu})
}

func (h *NavigationHandler) ListItems(c *gin.Context) {
	menuID, ok := menuIDParam(c)
	if !ok {
		return
	}
	menu, err := h.navigation.GetMenuTree(c.Request.Context(), menuID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"items": menu.Items})
}

func (h *NavigationHandler) CreateItem(c *gin.Context) {
	menuID, ok := menuIDParam(c)
	if !ok {
		return
	}
	var req struct {
		Label    string     `json:"label" binding:"required"`
		URL      *string    `json:"url"`
		Target   string     `json:"target"`
		ParentID *uuid.UUID `json:"parentId"`
		PageID   *uuid.UUID `json:"pageId"`
		Order    *int       `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}
	item, err := h.navigation.CreateItem(c.Request.Context(), menuID, services.CreateItemInput{
		Label:    req.Label,
		URL:      req.URL,
		Target:   req.Target,
		ParentID: req.ParentID,
		PageID:   req.PageID,
		Order:    req.Order,
	})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"item": item})
}

func (h *NavigationHandler) Reorder(c *gin.Context) {
	menuID, ok := menuIDParam(c)
	if !ok {
		return
	}
	var req struct {
		Items []navigation.Move `json:"items" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, navigation.CodeInvalidRequest, err,
			apierr.Detail{Field: "items", Message: "body must be {items: [{id, parentId, order}]}"})
		return
	}
	menu, err := h.navigation.Reorder(c.Request.Context(), menuID, req.Items)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"message": reorderedMessage, "menu": menu})
}
