package pack

// ContentType discriminates what kind of content a package carries. Every
// suppression and validation rule in the scanner keys off this discriminant
// explicitly rather than probing the metadata shape.
type ContentType string

const (
	// ContentKnowledge is the plain variant: facts, decisions, playbooks.
	ContentKnowledge ContentType = "knowledge"
	// ContentImprint is the personality variant carrying behavioral metadata.
	ContentImprint ContentType = "imprint"
)

// ResolveContentType picks the effective content type for a scan.
// An explicit caller choice wins; otherwise the package's own metadata tag
// is used; absent both, the plain knowledge type applies.
func ResolveContentType(p *Package, explicit ContentType) ContentType {
	if explicit != "" {
		return explicit
	}
	if p.Meta != nil && p.Meta.ContentType != "" {
		return p.Meta.ContentType
	}
	return ContentKnowledge
}
