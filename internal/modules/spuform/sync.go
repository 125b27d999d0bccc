package spuform

import (
	"pehlione.com/catalogadmin/internal/modules/sku"
)

// AddSlot appends an empty value slot. Empty slots contribute nothing, so the
// SKU set is left alone.
func AddSlot(s State, propertyID int64) (State, error) {
	if s.ReadOnly {
		return s, ErrReadOnly
	}
	if _, ok := s.Catalog.sales(propertyID); !ok {
		return s, ErrUnknownProperty
	}
	next := s.clone()
	next.Slots[propertyID] = append(next.Slots[propertyID], Slot{})
	return next, nil
}

func RemoveSlot(s State, propertyID int64, index int) (State, error) {
	if s.ReadOnly {
		return s, ErrReadOnly
	}
	slots := s.Slots[propertyID]
	if index < 0 || index >= len(slots) {
		return s, ErrSlotNotFound
	}
	next := s.clone()
	cur := next.Slots[propertyID]
	next.Slots[propertyID] = append(cur[:index:index], cur[index+1:]...)
	return resync(next), nil
}

// SetSlotValue picks valueID for a slot; 0 clears it. Picking a value that
// another slot of the same property already holds fails with
// ErrDuplicateValue and returns s untouched.
func SetSlotValue(s State, propertyID int64, index int, valueID int64) (State, error) {
	if s.ReadOnly {
		return s, ErrReadOnly
	}
	slots := s.Slots[propertyID]
	if index < 0 || index >= len(slots) {
		return s, ErrSlotNotFound
	}

	next := s.clone()
	cur := next.Slots[propertyID]

	if valueID == 0 {
		cur[index].ValueID = 0
		cur[index].ValueName = ""
		return resync(next), nil
	}

	for i, sl := range cur {
		if i != index && sl.ValueID == valueID {
			return s, ErrDuplicateValue
		}
	}

	opt, hasOpt := s.Catalog.option(propertyID, valueID)
	b, _ := s.Catalog.sales(propertyID)

	slot := cur[index]
	slot.ValueID = valueID
	if hasOpt && opt.Name != "" {
		slot.ValueName = opt.Name
	}
	if b.SupportValueImage {
		if slot.PicURL == "" {
			slot.PicURL = opt.PicURL
		}
	} else {
		slot.PicURL = ""
	}
	cur[index] = slot
	return resync(next), nil
}

// SetSlotImage sets a custom value image on a slot.
func SetSlotImage(s State, propertyID int64, index int, picURL string) (State, error) {
	if s.ReadOnly {
		return s, ErrReadOnly
	}
	b, ok := s.Catalog.sales(propertyID)
	if !ok {
		return s, ErrUnknownProperty
	}
	if !b.SupportValueImage {
		return s, ErrImageUnsupported
	}
	slots := s.Slots[propertyID]
	if index < 0 || index >= len(slots) {
		return s, ErrSlotNotFound
	}
	next := s.clone()
	next.Slots[propertyID][index].PicURL = picURL
	return resync(next), nil
}

// project derives the selection from the slots, in catalog order. Values are
// deduplicated by id; properties left without values are dropped.
func project(c Catalog, slots map[int64][]Slot) []sku.Property {
	out := []sku.Property{}
	for _, b := range c.Sales {
		var values []sku.Value
		seen := map[int64]int{}
		for _, sl := range slots[b.PropertyID] {
			if sl.ValueID == 0 {
				continue
			}
			opt, _ := c.option(b.PropertyID, sl.ValueID)
			name := sl.ValueName
			if name == "" {
				name = opt.Name
			}
			if name == "" {
				continue
			}
			pic := opt.PicURL
			if b.SupportValueImage && sl.PicURL != "" {
				pic = sl.PicURL
			}
			v := sku.Value{ID: sl.ValueID, Name: name, PicURL: pic}
			if i, dup := seen[sl.ValueID]; dup {
				values[i] = v
				continue
			}
			seen[sl.ValueID] = len(values)
			values = append(values, v)
		}
		if len(values) == 0 {
			continue
		}
		out = append(out, sku.Property{ID: b.PropertyID, Name: b.PropertyName, Values: values})
	}
	return out
}

// resync runs projection -> combinations -> merge. Single spec drafts keep
// their one SKU.
func resync(s State) State {
	s.Projection = project(s.Catalog, s.Slots)
	if s.Draft.SpecType {
		s.Draft.SKUs = sku.Merge(s.Draft.SKUs, sku.Combine(s.Projection))
	}
	return s
}

// slotsFromProjection seeds one filled slot per selected value.
func slotsFromProjection(props []sku.Property) map[int64][]Slot {
	out := make(map[int64][]Slot, len(props))
	for _, p := range props {
		slots := make([]Slot, 0, len(p.Values))
		for _, v := range p.Values {
			slots = append(slots, Slot{ValueID: v.ID, ValueName: v.Name, PicURL: v.PicURL})
		}
		out[p.ID] = slots
	}
	return out
}

// restrictSlots keeps slots of bound sales properties and gives every bound
// property an entry.
func restrictSlots(c Catalog, slots map[int64][]Slot) map[int64][]Slot {
	out := make(map[int64][]Slot, len(c.Sales))
	for _, b := range c.Sales {
		out[b.PropertyID] = append([]Slot{}, slots[b.PropertyID]...)
	}
	return out
}
