package readme

// SourceKind records which step of a resolution chain produced an
// artifact's content.
type SourceKind string

const (
	// KindRegistryDescription is a long-form document served by the
	// package registry itself: PyPI's rendered long description or the
	// README embedded in an npm registry record.
	KindRegistryDescription SourceKind = "registry-description"

	// KindHostedReadme is a README fetched from the package's source
	// repository.
	KindHostedReadme SourceKind = "hosted-readme"

	// KindRegistrySummary is a document synthesized from the registry's
	// one-line summary when nothing longer exists.
	KindRegistrySummary SourceKind = "registry-summary"

	// KindCustom is a document fetched from a caller-supplied URL.
	KindCustom SourceKind = "custom"
)

// Artifact is one resolved documentation file, ready to be written to the
// output directory.
type Artifact struct {
	// Content is the raw markdown (or plain text) body.
	Content string

	// Version is the package version the registry reported, "unknown"
	// when the registry omitted one, or "custom" for direct URL fetches.
	Version string

	// SourceURL names where the content came from, for the file header.
	SourceURL string

	// Kind records which resolution step produced the content.
	Kind SourceKind
}
