package ai

import "paypage_ai_server/internal/types"

// Templates are the cosmetic layouts the simulated path chooses from.
var Templates = []string{"modern", "classic", "minimal", "bold"}

type industryContent struct {
	TitleSuffix  string
	TrustSignals []string
}

const defaultIndustry = ""

var industryContents = map[string]industryContent{
	"Travel & Tourism": {
		TitleSuffix:  "Unforgettable Adventures Await",
		TrustSignals: []string{"Licensed Tour Operator", "10,000+ Happy Travelers", "IATA Certified", "24/7 Support"},
	},
	"Professional Services": {
		TitleSuffix:  "Expert Solutions Delivered",
		TrustSignals: []string{"Industry Certified", "15+ Years Experience", "200+ Successful Projects", "Money-Back Guarantee"},
	},
	"Creative Services": {
		TitleSuffix:  "Bringing Your Vision to Life",
		TrustSignals: []string{"Award-Winning Team", "Featured in Publications", "500+ Projects Completed", "Client Testimonials"},
	},
	defaultIndustry: {
		TitleSuffix:  "Premium Quality Guaranteed",
		TrustSignals: []string{"Satisfaction Guaranteed", "Secure Payment", "Fast Delivery", "Expert Support"},
	},
}

// headlineFormats each take the business name.
var headlineFormats = []string{
	"Transform Your Experience with %s",
	"Discover the Premium %s Difference",
	"Exclusive %s - Limited Availability",
	"Professional %s Solutions",
	"Elevate Your Success with %s",
}

var descriptionEnhancements = map[string][]string{
	"Travel & Tourism": {
		"Create memories that last a lifetime.",
		"Experience authentic local culture and breathtaking destinations.",
		"All-inclusive packages with premium accommodations.",
	},
	"Professional Services": {
		"Proven methodologies deliver measurable results.",
		"Customized solutions tailored to your specific needs.",
		"Expert guidance every step of the way.",
	},
	"Creative Services": {
		"Professional quality that exceeds expectations.",
		"Collaborative process ensures your vision comes to life.",
		"Industry-leading creativity and technical expertise.",
	},
	defaultIndustry: {
		"Premium quality and exceptional service.",
		"Tailored solutions for your unique needs.",
		"Trusted by customers worldwide.",
	},
}

var industryFeatures = map[string][]string{
	"Travel & Tourism": {
		"Small Group Experience (Max 12 guests)",
		"Local Expert Guides",
		"All Meals & Accommodations Included",
		"24/7 Travel Support",
	},
	"Professional Services": {
		"90-Day Implementation Timeline",
		"Dedicated Project Manager",
		"Weekly Progress Reports",
		"Post-Project Support",
	},
	"Creative Services": {
		"50+ High-Resolution Images",
		"Commercial Usage Rights",
		"Quick 48-Hour Turnaround",
		"Unlimited Minor Revisions",
	},
	defaultIndustry: {
		"Premium Quality Guarantee",
		"Expert Professional Service",
		"Comprehensive Support Included",
		"Flexible Scheduling Options",
	},
}

var callsToAction = []string{
	"Book Your Experience Now",
	"Get Started Today",
	"Secure Your Spot",
	"Reserve Now - Limited Availability",
	"Start Your Journey",
}

// Industry-agnostic on purpose; only features and trust signals vary by industry.
var simulatedFAQ = []types.FAQItem{
	{
		Question: "What's included in this package?",
		Answer:   "This comprehensive package includes everything mentioned in the description, plus additional premium features and dedicated support to ensure your complete satisfaction.",
	},
	{
		Question: "How does the booking process work?",
		Answer:   "Simply complete your purchase using our secure payment system. You'll receive immediate confirmation and detailed next steps within 24 hours.",
	},
	{
		Question: "What if I need to make changes?",
		Answer:   "We understand plans can change. Contact us within 48 hours for modifications, and we'll work with you to find the best solution.",
	},
	{
		Question: "Is there a satisfaction guarantee?",
		Answer:   "Absolutely! We stand behind our work with a 100% satisfaction guarantee. If you're not completely happy, we'll make it right.",
	},
}

// lookup returns table[industry] or the default entry. Every table above has one.
func lookup[T any](table map[string]T, industry string) T {
	if v, ok := table[industry]; ok {
		return v
	}
	return table[defaultIndustry]
}
