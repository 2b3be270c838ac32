package ai

import "strings"

const (
	markerDescription = "**Product Description:**"
	markerSocialPost  = "**Social Media Post:**"
	markerHashtags    = "**Hashtags:**"

	// Bare labels used by the fallback passes when the model drops the
	// bold markers or the --- delimiters.
	labelDescription = "Product Description:"
	labelSocialPost  = "Social Media Post:"
	labelHashtags    = "Hashtags:"

	DefaultDescription = "Could not generate a full description."
	DefaultSocialPost  = "Could not generate a social media post."
)

// ParsedCopy is the structured record extracted from the model's free-text
// reply. Hashtags are whitespace-separated tokens taken verbatim from the
// source text.
type ParsedCopy struct {
	Description string   `json:"description"`
	SocialPost  string   `json:"social_post"`
	Hashtags    []string `json:"hashtags"`
}

// ParseCopy splits a raw model reply on the --- delimiter and assigns each
// segment to the first section marker it contains. Sections that cannot be
// identified keep their defaults; a layered fallback chain recovers sections
// when the delimiters or bold markers are missing. The function never fails:
// worst case is all three defaults.
func ParseCopy(rawText string) ParsedCopy {
	out := ParsedCopy{
		Description: DefaultDescription,
		SocialPost:  DefaultSocialPost,
		Hashtags:    []string{},
	}

	text := strings.TrimSpace(rawText)

	// Later segments overwrite earlier ones for the same field.
	for _, part := range strings.Split(text, "---") {
		switch {
		case strings.Contains(part, markerDescription):
			out.Description = strings.TrimSpace(strings.ReplaceAll(part, markerDescription, ""))
		case strings.Contains(part, markerSocialPost):
			out.SocialPost = strings.TrimSpace(strings.ReplaceAll(part, markerSocialPost, ""))
		case strings.Contains(part, markerHashtags):
			out.Hashtags = strings.Fields(strings.ReplaceAll(part, markerHashtags, ""))
		}
	}

	// Hashtags may trail the last --- without their marker.
	if len(out.Hashtags) == 0 {
		if idx := strings.LastIndex(text, labelHashtags); idx >= 0 {
			line := strings.TrimSpace(text[idx+len(labelHashtags):])
			if line != "" {
				out.Hashtags = strings.Fields(line)
			}
		}
	}

	// An identified but empty section leaves an empty string behind; slice
	// it back out of the full text using the bare labels.
	if out.Description == "" {
		if idx := strings.LastIndex(text, labelDescription); idx >= 0 {
			after := text[idx+len(labelDescription):]
			if end := strings.Index(after, labelSocialPost); end >= 0 {
				after = after[:end]
			}
			out.Description = strings.TrimSpace(after)
		}
	}

	if out.SocialPost == "" {
		if idx := strings.LastIndex(text, labelSocialPost); idx >= 0 {
			after := text[idx+len(labelSocialPost):]
			if end := strings.Index(after, labelHashtags); end >= 0 {
				after = after[:end]
			}
			out.SocialPost = strings.TrimSpace(after)
		}
	}

	return out
}
