package draft

// Field keys double as JSON names on the wire and as FieldErrors keys.
const (
	FieldTitle           = "title"
	FieldPublicationDate = "publicationDate"
	FieldAuthorID        = "authorId"
	FieldDegreeProgramID = "degreeProgramId"
)

// FieldSpec is one entry of the registration form schema: how the field is
// presented and the parameters Validate enforces for it. The schema is plain
// data so renderers (TUI, HTML) can iterate it without knowing the rules.
type FieldSpec struct {
	Key         string
	Label       string
	Placeholder string
	Caption     string // neutral help text shown when the field has no error
}

// Schema returns the registration fields in presentation order.
func Schema() []FieldSpec {
	return []FieldSpec{
		{
			Key:         FieldTitle,
			Label:       "Title",
			Placeholder: "Monograph title",
			Caption:     "Full title of the monograph, up to 255 characters",
		},
		{
			Key:         FieldPublicationDate,
			Label:       "Publication date",
			Placeholder: "YYYY-MM-DD",
			Caption:     "Date the monograph was published",
		},
		{
			Key:         FieldAuthorID,
			Label:       "Author ID",
			Placeholder: "12345678",
			Caption:     "Author's identity document number, 6 to 10 digits",
		},
		{
			Key:         FieldDegreeProgramID,
			Label:       "Degree program",
			Caption:     "Academic program the monograph belongs to",
		},
	}
}

// Spec returns the schema entry for key. Renderers use it to pair an error
// message or caption with its field.
func Spec(key string) (FieldSpec, bool) {
	for _, f := range Schema() {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}
