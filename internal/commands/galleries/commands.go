package galleriescmd

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"
	"github.com/google/uuid"
	"github.com/velora/jewelcms/internal/commands"
	"github.com/velora/jewelcms/internal/galleries"
	"github.com/velora/jewelcms/internal/logging"
	"github.com/velora/jewelcms/pkg/interfaces"
)

const (
	toggleGalleryMessageType = "jewelcms.galleries.gallery.toggle"
	deleteGalleryMessageType = "jewelcms.galleries.gallery.delete"
	reorderItemMessageType   = "jewelcms.galleries.item.reorder"
)

// Direction values accepted by ReorderItemCommand.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// ToggleGalleryCommand flips the active flag of a stored gallery.
type ToggleGalleryCommand struct {
	GalleryID uuid.UUID `json:"gallery_id"`
}

// Type implements command.Message.
func (ToggleGalleryCommand) Type() string { return toggleGalleryMessageType }

// Validate ensures the command targets a concrete gallery.
func (m ToggleGalleryCommand) Validate() error {
	errs := validation.Errors{}
	if m.GalleryID == uuid.Nil {
		errs["gallery_id"] = validation.NewError("jewelcms.galleries.gallery.toggle.id_required", "gallery_id must reference a stored gallery")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteGalleryCommand soft-deletes a stored gallery and its items.
type DeleteGalleryCommand struct {
	GalleryID uuid.UUID `json:"gallery_id"`
}

// Type implements command.Message.
func (DeleteGalleryCommand) Type() string { return deleteGalleryMessageType }

// Validate ensures the command targets a concrete gallery.
func (m DeleteGalleryCommand) Validate() error {
	errs := validation.Errors{}
	if m.GalleryID == uuid.Nil {
		errs["gallery_id"] = validation.NewError("jewelcms.galleries.gallery.delete.id_required", "gallery_id must reference a stored gallery")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReorderItemCommand moves one stored item a single position up or down,
// renumbering the sibling rows so orders stay dense.
type ReorderItemCommand struct {
	GalleryID uuid.UUID `json:"gallery_id"`
	ItemIndex int       `json:"item_index"`
	Direction string    `json:"direction"`
}

// Type implements command.Message.
func (ReorderItemCommand) Type() string { return reorderItemMessageType }

// Validate checks the target gallery, index, and direction.
func (m ReorderItemCommand) Validate() error {
	errs := validation.Errors{}
	if m.GalleryID == uuid.Nil {
		errs["gallery_id"] = validation.NewError("jewelcms.galleries.item.reorder.id_required", "gallery_id must reference a stored gallery")
	}
	if m.ItemIndex < 0 {
		errs["item_index"] = validation.NewError("jewelcms.galleries.item.reorder.index_invalid", "item_index must be zero or positive")
	}
	if m.Direction != DirectionUp && m.Direction != DirectionDown {
		errs["direction"] = validation.NewError("jewelcms.galleries.item.reorder.direction_invalid", "direction must be up or down")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GalleryHandler executes gallery maintenance commands against the service.
type GalleryHandler struct {
	service galleries.Service
	logger  interfaces.Logger
	timeout time.Duration
}

// GalleryHandlerOption customises the handler.
type GalleryHandlerOption func(*GalleryHandler)

// GalleryHandlerWithTimeout overrides the default execution timeout.
func GalleryHandlerWithTimeout(timeout time.Duration) GalleryHandlerOption {
	return func(h *GalleryHandler) {
		h.timeout = timeout
	}
}

// NewGalleryHandler constructs a handler wired to the provided gallery service.
func NewGalleryHandler(service galleries.Service, logger interfaces.Logger, opts ...GalleryHandlerOption) *GalleryHandler {
	handler := &GalleryHandler{
		service: service,
		logger:  commands.EnsureLogger(logger),
		timeout: commands.DefaultCommandTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(handler)
		}
	}
	return handler
}

// ExecuteToggle satisfies command.Commander[ToggleGalleryCommand].
func (h *GalleryHandler) ExecuteToggle(ctx context.Context, msg ToggleGalleryCommand) error {
	if err := commands.WrapValidationError(command.ValidateMessage(msg)); err != nil {
		return err
	}
	ctx = commands.EnsureContext(ctx)
	ctx, cancel := commands.WithCommandTimeout(ctx, h.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return commands.WrapContextError(err)
	}

	gallery, err := h.service.ToggleActive(ctx, msg.GalleryID)
	if err != nil {
		return commands.WrapExecuteError(err)
	}

	logging.WithFields(h.logger, map[string]any{
		"operation":  "galleries.gallery.toggle",
		"gallery_id": msg.GalleryID.String(),
		"is_active":  gallery.IsActive,
	}).Info("galleries.command.toggled")
	return nil
}

// ExecuteDelete satisfies command.Commander[DeleteGalleryCommand].
func (h *GalleryHandler) ExecuteDelete(ctx context.Context, msg DeleteGalleryCommand) error {
	if err := commands.WrapValidationError(command.ValidateMessage(msg)); err != nil {
		return err
	}
	ctx = commands.EnsureContext(ctx)
	ctx, cancel := commands.WithCommandTimeout(ctx, h.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return commands.WrapContextError(err)
	}

	if err := h.service.Delete(ctx, msg.GalleryID); err != nil {
		return commands.WrapExecuteError(err)
	}

	logging.WithFields(h.logger, map[string]any{
		"operation":  "galleries.gallery.delete",
		"gallery_id": msg.GalleryID.String(),
	}).Info("galleries.command.deleted")
	return nil
}

// ExecuteReorder satisfies command.Commander[ReorderItemCommand]. It loads the
// stored gallery, swaps the targeted item with its neighbour, and resubmits
// the whole collection so persisted orders stay dense.
func (h *GalleryHandler) ExecuteReorder(ctx context.Context, msg ReorderItemCommand) error {
	if err := commands.WrapValidationError(command.ValidateMessage(msg)); err != nil {
		return err
	}
	ctx = commands.EnsureContext(ctx)
	ctx, cancel := commands.WithCommandTimeout(ctx, h.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return commands.WrapContextError(err)
	}

	gallery, err := h.service.Get(ctx, msg.GalleryID)
	if err != nil {
		return commands.WrapExecuteError(err)
	}
	if msg.ItemIndex >= len(gallery.Items) {
		return commands.WrapExecuteError(galleries.ErrItemIndexInvalid)
	}

	items := itemPayloads(gallery.Items)
	target := msg.ItemIndex
	neighbour := target - 1
	if msg.Direction == DirectionDown {
		neighbour = target + 1
	}
	if neighbour >= 0 && neighbour < len(items) {
		items[target], items[neighbour] = items[neighbour], items[target]
	}
	for i := range items {
		items[i].SortOrder = i + 1
	}

	if _, err := h.service.Update(ctx, msg.GalleryID, galleries.UpdateGalleryInput{
		Title:     gallery.Title,
		Subtitle:  gallery.Subtitle,
		IsActive:  gallery.IsActive,
		SortOrder: gallery.SortOrder,
		Items:     items,
	}); err != nil {
		return commands.WrapExecuteError(err)
	}

	logging.WithFields(h.logger, map[string]any{
		"operation":  "galleries.item.reorder",
		"gallery_id": msg.GalleryID.String(),
		"item_index": msg.ItemIndex,
		"direction":  msg.Direction,
	}).Info("galleries.command.reordered")
	return nil
}

func itemPayloads(rows []*galleries.GalleryItem) []galleries.ItemPayload {
	items := make([]galleries.ItemPayload, 0, len(rows))
	for _, row := range rows {
		payload := galleries.ItemPayload{
			ImageURL:  row.ImageURL,
			SortOrder: row.SortOrder,
			IsActive:  row.IsActive,
		}
		if row.Title != nil {
			title := *row.Title
			payload.Title = &title
		}
		if row.Description != nil {
			description := *row.Description
			payload.Description = &description
		}
		items = append(items, payload)
	}
	return items
}
