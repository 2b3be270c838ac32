package ai

import (
	"fmt"
	"strings"
)

const copyPromptTemplate = `
I will provide you with a product name and keywords. Your response MUST be formatted with '---' as the only delimiter between each section.

You are an expert copywriter for a local artisan marketplace. Your task is to write a compelling, SEO-optimized product description, a short social media post, and a list of hashtags for a handmade product.

Product Name: %s
Keywords/Details: %s

---
**Product Description:**
Write a detailed and engaging description of the product. Highlight its unique qualities, the materials used, and the story behind it.

---
**Social Media Post:**
Write a short, catchy post for Instagram or Facebook that encourages engagement.

---
**Hashtags:**
Generate 5-10 relevant and popular hashtags.
`

// BuildCopyPrompt embeds the product name and keywords verbatim. User input
// containing the --- delimiter or the section markers can confuse parsing;
// that ambiguity is part of the contract with ParseCopy.
func BuildCopyPrompt(productName, keywords string) string {
	return fmt.Sprintf(copyPromptTemplate, productName, keywords)
}

const baseEnhancePrompt = `You are editing a real photo of a handmade product for a marketplace listing.

Hard rules (must follow):

* Do NOT change the product itself in any way: do not alter shape, size, color, text, material texture, patterns, or any handmade irregularities.
* Do NOT add, remove, or hallucinate any parts of the product or accessories.
* Keep the product in the same position and perspective (no rotation or re-framing that changes its appearance).
* Only edit the environment: background, lighting, shadows, and unrelated clutter around the product.
* Output must look photorealistic, like a product-style photo shot in natural soft daylight.

Task:
Improve the overall quality and appearance of the photo while preserving the product itself unchanged.`

var enhanceStylePrompts = map[string]string{
	"fashion-look": `Style target (fashion-look):

* Create a clean white seamless background (pure white to very light warm white).

* Soft daylight, minimal natural shadows directly under the product.

* Remove any stains, wrinkles, dust, clutter, and surrounding objects.

* Keep the product edges crisp and true to the original.`,
	"tech-gadget": `Style target (tech-gadget):

* Place the unchanged product on a light wooden desk surface (subtle natural grain, modern airy aesthetic).

* Airy soft lighting, neutral white balance, gentle shadowing.

* Remove any clutter, cables, stains, and distracting background items.`,
	"outdoor-gear": `Style target (outdoor-gear):

* Place the unchanged product on rustic wood (slightly darker, outdoor-feel, but still clean).

* Warm daylight, crisp focus, natural shadowing.

* Remove clutter, dirt, stains, and unrelated objects; keep it neat and intentional.`,
}

const enhanceSafetySuffix = `If the product surface looks different from the input, revert: the product must be identical to the input photo. Only the background and lighting may change.
No text, no watermark, no added props.`

// BuildEnhancePrompt concatenates base, style, and safety prompts. Unknown
// styles fall back to fashion-look.
func BuildEnhancePrompt(style string) string {
	style = strings.TrimSpace(strings.ToLower(style))
	s, ok := enhanceStylePrompts[style]
	if !ok {
		s = enhanceStylePrompts["fashion-look"]
	}
	parts := []string{baseEnhancePrompt, s, enhanceSafetySuffix}
	return strings.Join(parts, "\n\n")
}
