package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// CreateCourseReq opens a new draft. Only the name is accepted up front;
// everything else is filled in through incremental edits.
type CreateCourseReq struct {
	Name string `json:"name"`
}

func (r CreateCourseReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("course name is required"),
			validation.Length(3, 100),
		),
	)
}

// UpdateDraftReq carries a partial edit. Nil fields are left untouched; an
// explicit empty string clears the field where clearing makes sense.
// ExpectedVersion, when set, turns the write into a compare-and-set against
// the draft's current version.
type UpdateDraftReq struct {
	Name            *string          `json:"name"`
	Desc            *string          `json:"desc"`
	Price           *decimal.Decimal `json:"price"`
	CategoryID      *string          `json:"categoryId"`
	ExpectedVersion *int64           `json:"expectedVersion"`

	// Thumbnail only arrives via multipart form uploads.
	Thumbnail *FileUpload `json:"-"`
}

func (r UpdateDraftReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil,
				validation.Required.Error("course name cannot be empty"),
				validation.Length(3, 100),
			),
		),
		validation.Field(&r.Desc,
			validation.When(r.Desc != nil && *r.Desc != "", validation.Length(10, 0)),
		),
		validation.Field(&r.Price, validation.By(validatePrice(r.Price))),
		validation.Field(&r.CategoryID,
			validation.When(r.CategoryID != nil && *r.CategoryID != "", is.UUID),
		),
	)
}

func validatePrice(p *decimal.Decimal) validation.RuleFunc {
	return func(interface{}) error {
		if p != nil && p.IsNegative() {
			return validation.NewError("validation_price_negative", "price must not be negative")
		}
		return nil
	}
}

// FileUpload is an in-memory file received from a multipart request.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}
