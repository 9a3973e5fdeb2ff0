package mapping

// Sheet is one named grid of the normalized output, ready for whatever
// serialization the caller wants (CSV, HTML table, spreadsheet).
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Empty reports whether the sheet has no data rows.
func (s Sheet) Empty() bool { return len(s.Rows) == 0 }

// Sheets renders the table set as named grids, in the fixed tab order the
// original workbook used.
func (t *Tables) Sheets() []Sheet {
	overview := Sheet{
		Name:   "Overview",
		Header: []string{"Item", "Value"},
		Rows: [][]string{
			{"Repository", t.Overview.Repository},
			{"Folder", t.Overview.Folder},
			{"Mapping Name", t.Overview.MappingName},
			{"Workflow Name", t.Overview.WorkflowName},
			{"Session Name", t.Overview.SessionName},
		},
	}

	sources := Sheet{
		Name:   "Source Fields",
		Header: []string{"Source Name", "Source Type", "Field Name", "Datatype", "Length/Precision", "Scale", "Nullable"},
	}
	for _, r := range t.SourceFields {
		sources.Rows = append(sources.Rows, []string{r.SourceName, r.SourceType, r.FieldName, r.Datatype, r.Precision, r.Scale, r.Nullable})
	}

	targets := Sheet{
		Name:   "Target Fields",
		Header: []string{"Target Name", "Database", "Column", "Datatype", "Precision", "Scale", "Key Type", "Nullable"},
	}
	for _, r := range t.TargetFields {
		targets.Rows = append(targets.Rows, []string{r.TargetName, r.Database, r.Column, r.Datatype, r.Precision, r.Scale, r.KeyType, r.Nullable})
	}

	lineage := Sheet{
		Name:   "Field Lineage",
		Header: []string{"Target Table", "Target Column", "Comes From Instance", "Comes From Field"},
	}
	for _, r := range t.Lineage {
		lineage.Rows = append(lineage.Rows, []string{r.TargetTable, r.TargetColumn, r.FromInstance, r.FromField})
	}

	trans := Sheet{
		Name:   "Transformations",
		Header: []string{"Transformation", "Type", "Port Name", "Port Type", "Datatype", "Precision", "Scale", "Default", "Expression"},
	}
	for _, r := range t.Transformations {
		trans.Rows = append(trans.Rows, []string{r.Transformation, r.Type, r.PortName, r.PortType, r.Datatype, r.Precision, r.Scale, r.Default, r.Expression})
	}

	conns := Sheet{
		Name:   "Connectors",
		Header: []string{"From Instance", "From Type", "From Field", "To Instance", "To Type", "To Field"},
	}
	for _, r := range t.Connectors {
		conns.Rows = append(conns.Rows, []string{r.FromInstance, r.FromType, r.FromField, r.ToInstance, r.ToType, r.ToField})
	}

	attrs := Sheet{
		Name:   "Session Attributes",
		Header: []string{"Attribute", "Value"},
	}
	for _, r := range t.SessionAttributes {
		attrs.Rows = append(attrs.Rows, []string{r.Name, r.Value})
	}

	return []Sheet{overview, sources, targets, lineage, trans, conns, attrs}
}
