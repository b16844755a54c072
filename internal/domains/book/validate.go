package book

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/shared/apperr"
)

const maxTitleLength = 255

// ExistsByIDsFunc is the batched author existence check injected into
// Validate, keeping the rule evaluation free of store wiring.
type ExistsByIDsFunc func(ctx context.Context, ids []int) (bool, error)

// Validate evaluates every field rule and accumulates the violations in
// title, price, isPublished, authors order. current is the persisted book
// on the update path and nil on create; it arms the publish-reversal rule.
// The duplicate check and the existence check on authors are mutually
// exclusive so one bad list does not produce compound errors.
//
// The returned error is a store failure from the existence check, not a
// rule violation.
func Validate(ctx context.Context, req SaveBookRequest, current *Book, authorsExist ExistsByIDsFunc) ([]apperr.FieldError, error) {
	var details []apperr.FieldError

	if err := validation.Validate(req.Title,
		validation.NotNil.Error("title is required"),
		validation.Required.Error("title is required"),
		validation.RuneLength(1, maxTitleLength).Error("title must be 255 characters or less"),
	); err != nil {
		details = append(details, apperr.FieldError{Field: "title", Message: err.Error()})
	}

	if req.Price == nil {
		details = append(details, apperr.FieldError{Field: "price", Message: "price is required"})
	} else if err := validation.Validate(*req.Price,
		validation.Min(0).Error("price must be zero or greater"),
	); err != nil {
		details = append(details, apperr.FieldError{Field: "price", Message: err.Error()})
	}

	if req.IsPublished == nil {
		details = append(details, apperr.FieldError{Field: "isPublished", Message: "isPublished is required"})
	} else if current != nil && current.IsPublished && !*req.IsPublished {
		details = append(details, apperr.FieldError{Field: "isPublished", Message: "a published book cannot be set back to unpublished"})
	}

	if len(req.Authors) == 0 {
		details = append(details, apperr.FieldError{Field: "authors", Message: "authors is required"})
	} else if hasDuplicates(req.Authors) {
		details = append(details, apperr.FieldError{Field: "authors", Message: "authors must not contain the same author twice"})
	} else {
		exist, err := authorsExist(ctx, req.Authors)
		if err != nil {
			return nil, err
		}
		if !exist {
			details = append(details, apperr.FieldError{Field: "authors", Message: "authors contains an author that does not exist"})
		}
	}

	return details, nil
}

func hasDuplicates(ids []int) bool {
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
