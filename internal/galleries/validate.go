package galleries

import (
	"fmt"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field length caps shared by client validation and the admin API.
const (
	MaxItemTitleLen       = 100
	MaxItemDescriptionLen = 500
	MaxGalleryTitleLen    = 200
	MaxGallerySubtitleLen = 500
)

// ValidateItem checks one draft item against the field rules. Title and
// description are optional; media is required in exactly one variant. The
// returned map is keyed by field path and empty when the item is valid.
func ValidateItem(item ItemDraft) validation.Errors {
	errs := validation.Errors{}

	if item.Title != "" && utf8.RuneCountInString(item.Title) > MaxItemTitleLen {
		errs["title"] = validation.NewError(
			"jewelcms.galleries.item_title_too_long",
			fmt.Sprintf("title must be at most %d characters", MaxItemTitleLen))
	}
	if item.Description != "" && utf8.RuneCountInString(item.Description) > MaxItemDescriptionLen {
		errs["description"] = validation.NewError(
			"jewelcms.galleries.item_description_too_long",
			fmt.Sprintf("description must be at most %d characters", MaxItemDescriptionLen))
	}
	if !item.Media.IsResolvable() {
		errs["media"] = validation.NewError(
			"jewelcms.galleries.item_media_required",
			"an image file or an image URL is required")
	}
	if item.SortOrder < 0 {
		errs["sort_order"] = validation.NewError(
			"jewelcms.galleries.item_sort_order_invalid",
			"sort order must be zero or positive")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Result aggregates collection validation output. Errors are keyed by field
// path (item errors under items.<index>.<field>) so the editor can highlight
// the exact offending field.
type Result struct {
	Valid  bool
	Errors validation.Errors
}

// ValidateGallery validates the parent fields plus the complete-item subset.
// Draft placeholders without media are filtered out rather than rejected so
// users can scaffold future items without being blocked; the remaining
// subset must contain at least one item.
func ValidateGallery(draft GalleryDraft) Result {
	errs := validation.Errors{}

	title := strings.TrimSpace(draft.Title)
	switch {
	case title == "":
		errs["title"] = validation.NewError(
			"jewelcms.galleries.title_required", "title is required")
	case utf8.RuneCountInString(title) > MaxGalleryTitleLen:
		errs["title"] = validation.NewError(
			"jewelcms.galleries.title_too_long",
			fmt.Sprintf("title must be at most %d characters", MaxGalleryTitleLen))
	}

	subtitle := strings.TrimSpace(draft.Subtitle)
	switch {
	case subtitle == "":
		errs["subtitle"] = validation.NewError(
			"jewelcms.galleries.subtitle_required", "subtitle is required")
	case utf8.RuneCountInString(subtitle) > MaxGallerySubtitleLen:
		errs["subtitle"] = validation.NewError(
			"jewelcms.galleries.subtitle_too_long",
			fmt.Sprintf("subtitle must be at most %d characters", MaxGallerySubtitleLen))
	}

	if draft.SortOrder < 0 {
		errs["sort_order"] = validation.NewError(
			"jewelcms.galleries.sort_order_invalid",
			"sort order must be zero or positive")
	}

	complete := CompleteItems(draft.Items)
	if len(complete) == 0 {
		errs["items"] = validation.NewError(
			"jewelcms.galleries.items_insufficient",
			"at least one item with an image is required")
	}

	for idx, item := range complete {
		for field, err := range ValidateItem(item) {
			errs[fmt.Sprintf("items.%d.%s", idx, field)] = err
		}
	}

	if len(errs) == 0 {
		return Result{Valid: true}
	}
	return Result{Valid: false, Errors: errs}
}

// CompleteItems filters drafts to the subset eligible for submission. The
// filter depends only on media presence, never on title or description.
func CompleteItems(items []ItemDraft) []ItemDraft {
	complete := make([]ItemDraft, 0, len(items))
	for _, item := range items {
		if item.Complete() {
			complete = append(complete, item)
		}
	}
	return complete
}
