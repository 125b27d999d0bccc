package spuform

import "errors"

var (
	ErrReadOnly         = errors.New("draft is read only")
	ErrDuplicateValue   = errors.New("the same value cannot be selected twice for one sales property")
	ErrUnknownProperty  = errors.New("property is not bound to the category")
	ErrSlotNotFound     = errors.New("value slot not found")
	ErrSKUNotFound      = errors.New("sku row not found")
	ErrImageUnsupported = errors.New("property does not support value images")
	ErrUnknownAction    = errors.New("unknown action")
	ErrDraftNotFound    = errors.New("draft not found")
)

type Section string

const (
	SectionInfo        Section = "info"
	SectionSKU         Section = "sku"
	SectionDelivery    Section = "delivery"
	SectionDescription Section = "description"
	SectionOther       Section = "other"
)

// ValidationError is the first failing submit rule.
type ValidationError struct {
	Rule    int
	Section Section
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
