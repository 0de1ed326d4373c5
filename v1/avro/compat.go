package avro

// Compatible is the pure predicate at the center of the engine: can a
// consumer using reader successfully decode data written under writer?
// It never errors and never explains a false verdict — only
// successfully Built schemas reach this function, so there is nothing
// left to validate.
//
// Grounded on avro.cc's check_compatible, with one addition that file
// lacks entirely: a visited-pair set keyed by each tree's own arena
// indices, so mutually recursive named types terminate instead of
// looping forever.
func Compatible(reader, writer *SchemaNode) bool {
	if reader == nil || writer == nil {
		return false
	}
	return compatibleRec(reader, writer, make(map[[2]int]bool))
}

func compatibleRec(reader, writer *SchemaNode, visited map[[2]int]bool) bool {
	r := reader.resolved()
	w := writer.resolved()

	rIsUnion := r.Kind == KindUnion
	wIsUnion := w.Kind == KindUnion

	if !rIsUnion && !wIsUnion && r.Name != nil && w.Name != nil {
		key := [2]int{r.ArenaIndex, w.ArenaIndex}
		if visited[key] {
			return true
		}
		visited[key] = true
	}

	// Case B: reader is a union, writer is not.
	if rIsUnion && !wIsUnion {
		for _, branch := range r.Branches {
			if compatibleRec(branch, writer, visited) {
				return true
			}
		}
		return false
	}

	// Case C: writer is a union, reader is not.
	if !rIsUnion && wIsUnion {
		for _, branch := range w.Branches {
			if !compatibleRec(reader, branch, visited) {
				return false
			}
		}
		return true
	}

	// Case D: different kinds, neither is a union.
	if r.Kind != w.Kind {
		return primaryResolve(r.Kind, w.Kind, r, w)
	}

	// Case A: same kind (this also covers union/union, whose same-kind
	// test is "every writer branch absorbed by some reader branch" —
	// identical in shape to case C but driven by the reader's branches).
	switch r.Kind {
	case KindRecord:
		return compatibleRecord(r, w, visited)
	case KindEnum:
		return compatibleEnum(r, w)
	case KindUnion:
		return compatibleUnionSameKind(r, w, visited)
	case KindArray:
		return compatibleRec(r.Items, w.Items, visited)
	case KindMap:
		return compatibleRec(r.Values, w.Values, visited)
	default:
		return primaryResolve(r.Kind, w.Kind, r, w)
	}
}

// primaryResolve is the fast resolve test: a kind match plus any
// per-kind scalar-level test (fixed length equality, primitive numeric
// widening, string/bytes symmetry). It is used both as the case-A
// preamble for primitives/fixed and as all of case D.
func primaryResolve(readerKind, writerKind SchemaKind, reader, writer *SchemaNode) bool {
	if readerKind == writerKind {
		if readerKind == KindFixed {
			return reader.FixedSize == writer.FixedSize
		}
		return true
	}

	if isNumeric(readerKind) && isNumeric(writerKind) {
		return numericRank[writerKind] <= numericRank[readerKind]
	}

	if (readerKind == KindString && writerKind == KindBytes) ||
		(readerKind == KindBytes && writerKind == KindString) {
		return true
	}

	return false
}

// compatibleRecord implements: for every reader field, a same-named
// writer field must recurse-compatible, or else the reader field must
// carry a non-null default. Extra writer fields are ignored. Iteration
// order is the reader's declared order.
func compatibleRecord(reader, writer *SchemaNode, visited map[[2]int]bool) bool {
	for _, rf := range reader.Fields {
		wf, found := findField(writer, rf.Name)
		switch {
		case found:
			if !compatibleRec(rf.Type, wf.Type, visited) {
				return false
			}
		case rf.hasNonNullDefault():
			continue
		default:
			return false
		}
	}
	return true
}

func findField(record *SchemaNode, name string) (Field, bool) {
	for _, f := range record.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// compatibleEnum implements: a non-null reader default symbol absorbs
// any writer symbol set; otherwise every writer symbol must already
// appear among the reader's symbols.
func compatibleEnum(reader, writer *SchemaNode) bool {
	if reader.EnumDefault != nil {
		return true
	}

	readerSymbols := make(map[string]bool, len(reader.Symbols))
	for _, s := range reader.Symbols {
		readerSymbols[s] = true
	}
	for _, s := range writer.Symbols {
		if !readerSymbols[s] {
			return false
		}
	}
	return true
}

// compatibleUnionSameKind implements same-kind union/union resolution:
// every writer branch must be matched by some reader branch.
func compatibleUnionSameKind(reader, writer *SchemaNode, visited map[[2]int]bool) bool {
	for _, wb := range writer.Branches {
		matched := false
		for _, rb := range reader.Branches {
			if compatibleRec(rb, wb, visited) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
