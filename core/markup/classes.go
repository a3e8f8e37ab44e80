// Package markup converts markdown and plain text into block HTML carrying
// fixed marker classes, so downstream styling can target generated content.
// Output is not sanitized here; callers pass it through a core.Sanitizer.
package markup

// Marker classes attached to generated elements.
const (
	ClassHeadingLarge = "mix-generated-heading-large"
	ClassHeadingSmall = "mix-generated-heading-small"
	ClassList         = "mix-generated-list"
	ClassListItem     = "mix-generated-list-item"
	ClassParagraph    = "mix-generated-paragraph"
)

// EmptyParagraph is the HTML of an empty normalized field.
const EmptyParagraph = `<p class="` + ClassParagraph + `"></p>`
