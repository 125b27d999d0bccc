package spuform

import (
	"fmt"

	"pehlione.com/catalogadmin/internal/modules/sku"
)

const (
	ActionAddSlot            = "add_slot"
	ActionRemoveSlot         = "remove_slot"
	ActionSetSlotValue       = "set_slot_value"
	ActionSetSlotImage       = "set_slot_image"
	ActionSetSpecType        = "set_spec_type"
	ActionPatchSKU           = "patch_sku"
	ActionDeleteSKU          = "delete_sku"
	ActionApplyBatch         = "apply_batch"
	ActionSetDisplayProperty = "set_display_property"
	ActionPatchFields        = "patch_fields"
)

// Action is one posted edit. Only the fields its Type needs are read.
type Action struct {
	Type       string       `json:"type" binding:"required"`
	PropertyID int64        `json:"propertyId,omitempty"`
	Index      int          `json:"index,omitempty"`
	ValueID    int64        `json:"valueId,omitempty"`
	PicURL     string       `json:"picUrl,omitempty"`
	Multi      bool         `json:"multi,omitempty"`
	Text       string       `json:"text,omitempty"`
	SKU        *SKUPatch    `json:"sku,omitempty"`
	Template   *sku.SKU     `json:"template,omitempty"`
	Fields     *FieldsPatch `json:"fields,omitempty"`
}

// Apply dispatches a to its transition.
func Apply(s State, a Action) (State, error) {
	switch a.Type {
	case ActionAddSlot:
		return AddSlot(s, a.PropertyID)
	case ActionRemoveSlot:
		return RemoveSlot(s, a.PropertyID, a.Index)
	case ActionSetSlotValue:
		return SetSlotValue(s, a.PropertyID, a.Index, a.ValueID)
	case ActionSetSlotImage:
		return SetSlotImage(s, a.PropertyID, a.Index, a.PicURL)
	case ActionSetSpecType:
		return SetSpecType(s, a.Multi)
	case ActionPatchSKU:
		if a.SKU == nil {
			return s, fmt.Errorf("%w: %s needs sku", ErrUnknownAction, a.Type)
		}
		return PatchSKU(s, a.Index, *a.SKU)
	case ActionDeleteSKU:
		return DeleteSKU(s, a.Index)
	case ActionApplyBatch:
		if a.Template == nil {
			return s, fmt.Errorf("%w: %s needs template", ErrUnknownAction, a.Type)
		}
		return ApplyBatch(s, *a.Template)
	case ActionSetDisplayProperty:
		return SetDisplayProperty(s, a.PropertyID, a.Text)
	case ActionPatchFields:
		if a.Fields == nil {
			return s, fmt.Errorf("%w: %s needs fields", ErrUnknownAction, a.Type)
		}
		return PatchFields(s, *a.Fields)
	}
	return s, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
}
