package mapping

import "encoding/xml"

// node is a generic XML element. Unmarshalling into it keeps the whole
// document tree so we can search by tag name at any depth, the way the
// PowerCenter export nests things (SOURCE under FOLDER, sometimes with
// grouping elements in between depending on the repository version).
type node struct {
	XMLName xml.Name
	Attr    []xml.Attr `xml:",any,attr"`
	Nodes   []node     `xml:",any"`
}

// attr returns the named attribute or "" when absent.
func (n *node) attr(name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// findAll collects every descendant element with the given tag, in
// document order. The receiver itself is never included.
func (n *node) findAll(tag string) []*node {
	if n == nil {
		return nil
	}
	var out []*node
	for i := range n.Nodes {
		c := &n.Nodes[i]
		if c.XMLName.Local == tag {
			out = append(out, c)
		}
		out = append(out, c.findAll(tag)...)
	}
	return out
}

// findFirst returns the first descendant with the given tag, or nil.
func (n *node) findFirst(tag string) *node {
	if n == nil {
		return nil
	}
	for i := range n.Nodes {
		c := &n.Nodes[i]
		if c.XMLName.Local == tag {
			return c
		}
		if found := c.findFirst(tag); found != nil {
			return found
		}
	}
	return nil
}

// lookupAttrs are the transformation table-attributes whose free-text values
// carry business logic worth surfacing alongside port expressions.
var lookupAttrs = map[string]bool{
	"Lookup Sql Override": true,
	"Lookup condition":    true,
	"Lookup table name":   true,
}

// Parse normalizes one PowerCenter mapping export into the flat table set.
// It never fails: bytes that do not parse as XML, or a document missing any
// of the expected structure, degrade to empty tables and sentinel metadata.
// The surrounding pipeline has no partial-success path, so "nothing found"
// is the only acceptable failure mode here.
func Parse(data []byte) *Result {
	res := &Result{Meta: Meta{TargetName: DefaultTargetName}}

	var root node
	if err := xml.Unmarshal(data, &root); err != nil {
		return res
	}

	repo := root.findFirst("REPOSITORY")
	folder := root.findFirst("FOLDER")
	mapNode := root.findFirst("MAPPING")
	workflow := root.findFirst("WORKFLOW")
	var session *node
	if workflow != nil {
		session = workflow.findFirst("SESSION")
	}

	res.Tables.Overview = Overview{
		Repository:   repo.attr("NAME"),
		Folder:       folder.attr("NAME"),
		MappingName:  mapNode.attr("NAME"),
		WorkflowName: workflow.attr("NAME"),
		SessionName:  session.attr("NAME"),
	}
	res.Meta.MappingName = res.Tables.Overview.MappingName
	res.Meta.WorkflowName = res.Tables.Overview.WorkflowName

	// Sources. Headers keep first-seen order, deduplicated.
	seen := map[string]bool{}
	for _, s := range folder.findAll("SOURCE") {
		sName := s.attr("NAME")
		sType := s.attr("DATABASETYPE")
		for _, f := range s.findAll("SOURCEFIELD") {
			res.Tables.SourceFields = append(res.Tables.SourceFields, SourceField{
				SourceName: sName,
				SourceType: sType,
				FieldName:  f.attr("NAME"),
				Datatype:   f.attr("DATATYPE"),
				Precision:  f.attr("PRECISION"),
				Scale:      f.attr("SCALE"),
				Nullable:   f.attr("NULLABLE"),
			})
			if name := f.attr("NAME"); name != "" && !seen[name] {
				seen[name] = true
				res.Meta.SourceHeaders = append(res.Meta.SourceHeaders, name)
			}
		}
	}

	// Targets. The first one in document order is canonical for DDL and
	// lineage; the rest still contribute columns to the table.
	for i, t := range folder.findAll("TARGET") {
		tName := t.attr("NAME")
		if i == 0 && tName != "" {
			res.Meta.TargetName = tName
		}
		for _, f := range t.findAll("TARGETFIELD") {
			res.Tables.TargetFields = append(res.Tables.TargetFields, TargetField{
				TargetName: tName,
				Database:   t.attr("DATABASETYPE"),
				Column:     f.attr("NAME"),
				Datatype:   f.attr("DATATYPE"),
				Precision:  f.attr("PRECISION"),
				Scale:      f.attr("SCALE"),
				KeyType:    f.attr("KEYTYPE"),
				Nullable:   f.attr("NULLABLE"),
			})
		}
	}

	// Transformations: one row per port, plus synthetic rows for lookup
	// attributes that hide SQL overrides and join conditions.
	for _, tr := range mapNode.findAll("TRANSFORMATION") {
		trName := tr.attr("NAME")
		trType := tr.attr("TYPE")
		for _, p := range tr.findAll("TRANSFORMFIELD") {
			res.Tables.Transformations = append(res.Tables.Transformations, TransformField{
				Transformation: trName,
				Type:           trType,
				PortName:       p.attr("NAME"),
				PortType:       p.attr("PORTTYPE"),
				Datatype:       p.attr("DATATYPE"),
				Precision:      p.attr("PRECISION"),
				Scale:          p.attr("SCALE"),
				Default:        p.attr("DEFAULTVALUE"),
				Expression:     p.attr("EXPRESSION"),
			})
		}
		for _, ta := range tr.findAll("TABLEATTRIBUTE") {
			if !lookupAttrs[ta.attr("NAME")] {
				continue
			}
			res.Tables.Transformations = append(res.Tables.Transformations, TransformField{
				Transformation: trName,
				Type:           trType,
				PortName:       ta.attr("NAME"),
				PortType:       "Attribute",
				Expression:     ta.attr("VALUE"),
			})
		}
	}

	for _, c := range mapNode.findAll("CONNECTOR") {
		res.Tables.Connectors = append(res.Tables.Connectors, Connector{
			FromInstance: c.attr("FROMINSTANCE"),
			FromType:     c.attr("FROMINSTANCETYPE"),
			FromField:    c.attr("FROMFIELD"),
			ToInstance:   c.attr("TOINSTANCE"),
			ToType:       c.attr("TOINSTANCETYPE"),
			ToField:      c.attr("TOFIELD"),
		})
	}

	for _, a := range session.findAll("ATTRIBUTE") {
		res.Tables.SessionAttributes = append(res.Tables.SessionAttributes, SessionAttribute{
			Name:  a.attr("NAME"),
			Value: a.attr("VALUE"),
		})
	}

	return res
}
