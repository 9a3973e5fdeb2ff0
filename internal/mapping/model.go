package mapping

// Overview holds the document-level identifiers. Missing elements leave
// the field empty, never nil.
type Overview struct {
	Repository   string
	Folder       string
	MappingName  string
	WorkflowName string
	SessionName  string
}

// SourceField is one field of a declared source.
type SourceField struct {
	SourceName string
	SourceType string
	FieldName  string
	Datatype   string
	Precision  string
	Scale      string
	Nullable   string
}

// TargetField is one column of a declared target.
type TargetField struct {
	TargetName string
	Database   string
	Column     string
	Datatype   string
	Precision  string
	Scale      string
	KeyType    string
	Nullable   string
}

// TransformField is one port of a transformation, or a synthetic row for a
// lookup table-attribute that carries an expression of interest.
type TransformField struct {
	Transformation string
	Type           string
	PortName       string
	PortType       string
	Datatype       string
	Precision      string
	Scale          string
	Default        string
	Expression     string
}

// Connector is one data-flow edge. Endpoints refer to instances by name,
// not by reference.
type Connector struct {
	FromInstance string
	FromType     string
	FromField    string
	ToInstance   string
	ToType       string
	ToField      string
}

// LineageRecord is the immediate upstream hop for one target column.
type LineageRecord struct {
	TargetTable  string
	TargetColumn string
	FromInstance string
	FromField    string
}

// SessionAttribute is one name/value pair from the workflow session node.
type SessionAttribute struct {
	Name  string
	Value string
}

// Tables is the full normalized table set produced from one document.
type Tables struct {
	Overview          Overview
	SourceFields      []SourceField
	TargetFields      []TargetField
	Lineage           []LineageRecord
	Transformations   []TransformField
	Connectors        []Connector
	SessionAttributes []SessionAttribute
}

// Meta carries the handful of values downstream stages key on.
type Meta struct {
	TargetName    string
	MappingName   string
	WorkflowName  string
	SourceHeaders []string
}

// Result is what Parse returns. It is always fully populated: a document
// that cannot be read still yields empty tables and sentinel metadata.
type Result struct {
	Tables Tables
	Meta   Meta
}

// DefaultTargetName is used when no target definition exists in the document.
const DefaultTargetName = "TARGET_TABLE"
