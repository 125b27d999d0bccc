package sku

// Combine returns the Cartesian product of the selected values.
//
// Properties are folded in input order. For every value of the current
// property, every combination built so far is extended by that value, so
// earlier properties vary fastest. A property without values yields an
// empty product, and so does an empty input.
func Combine(props []Property) []Combination {
	if len(props) == 0 {
		return []Combination{}
	}

	combos := []Combination{{}}
	for _, p := range props {
		next := make([]Combination, 0, len(combos)*len(p.Values))
		for _, v := range p.Values {
			for _, c := range combos {
				row := make(Combination, 0, len(c)+1)
				row = append(row, c...)
				row = append(row, Pair{
					PropertyID:   p.ID,
					PropertyName: p.Name,
					ValueID:      v.ID,
					ValueName:    v.Name,
					ValuePicURL:  v.PicURL,
				})
				next = append(next, row)
			}
		}
		combos = next
	}
	return combos
}

// Merge lines the previous SKUs up with a fresh set of combinations.
//
// A previous SKU whose key matches a combination keeps every editable field
// and only takes the combination's pair metadata. Unmatched combinations get
// a zeroed SKU. Previous SKUs without a matching combination are dropped.
// The result follows combination order.
func Merge(prev []SKU, combos []Combination) []SKU {
	byKey := make(map[string]SKU, len(prev))
	for _, s := range prev {
		byKey[Key(s.Properties)] = s
	}

	out := make([]SKU, 0, len(combos))
	for _, c := range combos {
		pairs := make([]Pair, len(c))
		copy(pairs, c)

		s, ok := byKey[Key(pairs)]
		if !ok {
			s = Default()
		}
		s.Properties = pairs
		out = append(out, s)
	}
	return out
}

// PropertiesFromSKUs rebuilds the selection projection from SKU pairs, in
// first-seen order of properties and of values within each property.
func PropertiesFromSKUs(skus []SKU) []Property {
	var out []Property
	index := map[int64]int{}
	for _, s := range skus {
		for _, p := range s.Properties {
			i, ok := index[p.PropertyID]
			if !ok {
				index[p.PropertyID] = len(out)
				out = append(out, Property{
					ID:     p.PropertyID,
					Name:   p.PropertyName,
					Values: []Value{{ID: p.ValueID, Name: p.ValueName, PicURL: p.ValuePicURL}},
				})
				continue
			}
			if !hasValue(out[i].Values, p.ValueID) {
				out[i].Values = append(out[i].Values, Value{ID: p.ValueID, Name: p.ValueName, PicURL: p.ValuePicURL})
			}
		}
	}
	return out
}

func hasValue(values []Value, id int64) bool {
	for _, v := range values {
		if v.ID == id {
			return true
		}
	}
	return false
}
