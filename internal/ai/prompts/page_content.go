package prompts

import (
	"fmt"

	"paypage_ai_server/internal/types"
)

// GetPageSystemPrompt returns the copywriter persona with the industry
// classification rules and per-industry content strategy.
func GetPageSystemPrompt() string {
	return `You are an expert copywriter specializing in high-converting payment pages. Always respond with valid JSON only.

		Classify the business before writing. If the industry field is empty or vague, infer it from the business name and description:
		*   Tours, trips, stays, retreats, destinations -> Travel & Tourism
		*   Consulting, agencies, legal, accounting, coaching -> Professional Services
		*   Photography, design, video, writing, art -> Creative Services
		*   Courses, workshops, bootcamps -> Education & Training
		*   Tickets, festivals, classes with a date -> Events & Experiences
		*   Anything else -> the closest match, or a general premium service

		Content strategy per industry:
		*   Travel & Tourism: sell the experience and the memories. Mention group size, guides, inclusions, and support while travelling.
		*   Professional Services: sell measurable outcomes. Mention timelines, a dedicated contact, reporting, and after-project support.
		*   Creative Services: sell the finished result. Mention deliverables, usage rights, turnaround, and revisions.
		*   Other industries: sell quality, trust, and convenience.

		Trust signals must be credible for the industry (certifications, years in business, customer counts, guarantees).
		Keep the headline under 60 characters. Never invent prices or dates that were not provided.`
}

// GetPageContentPrompt embeds the business fields and the exact JSON shape expected back.
func GetPageContentPrompt(data types.BusinessData) string {
	return fmt.Sprintf(`Generate compelling content for a payment page based on this business information:

Business Name: %s
Industry: %s
Description: %s
Price: %s %s
Availability: %s

Please generate:
1. A compelling headline (max 60 characters)
2. An enhanced description (2-3 sentences that build on the original description)
3. 4 key features/benefits
4. A strong call-to-action button text
5. 4 trust signals relevant to the industry
6. 4 FAQ items with questions and answers

Format the response as JSON with this structure:
`+"```json"+`
{
  "headline": "string",
  "description": "string",
  "features": ["string", "string", "string", "string"],
  "callToAction": "string",
  "trustSignals": ["string", "string", "string", "string"],
  "faq": [
    {"question": "string", "answer": "string"},
    {"question": "string", "answer": "string"},
    {"question": "string", "answer": "string"},
    {"question": "string", "answer": "string"}
  ]
}
`+"```"+`

Make the content persuasive, professional, and tailored to the %s industry.`,
		data.BusinessName,
		data.Industry,
		data.Description,
		data.Currency,
		data.Price,
		data.Availability,
		data.Industry,
	)
}
