package storefront

// Metadata is rendered into the document head.
type Metadata struct {
	Title       string
	Description string
	Keywords    string
	Author      string
	Robots      string
	ThemeColor  string
	OpenGraph   SocialCard
	Twitter     SocialCard
}

type SocialCard struct {
	Title       string
	Description string
	Type        string
	Locale      string
	Card        string
}

type NavLink struct {
	Label  string
	Anchor string
}

type Hero struct {
	Headline      string
	Tagline       string
	PrimaryCTA    string
	SecondaryCTA  string
	SecondaryLink string
}

type SectionHeading struct {
	Title    string
	Subtitle string
}

type Feature struct {
	Icon        string
	Title       string
	Description string
}

type Testimonial struct {
	Name    string
	Title   string
	Content string
	Rating  int
}

type NewsletterCopy struct {
	Kicker      string
	Title       string
	Body        string
	Placeholder string
	Button      string
}

type Footer struct {
	About      []string
	QuickLinks []string
	Social     []string
	Copyright  string
}

// Content is the static marketing copy of the storefront page.
type Content struct {
	Meta         Metadata
	Banner       string
	Nav          []NavLink
	Hero         Hero
	Products     SectionHeading
	Features     SectionHeading
	FeatureList  []Feature
	Testimonials SectionHeading
	Reviews      []Testimonial
	Newsletter   NewsletterCopy
	Contact      SectionHeading
	Footer       Footer
}

// DefaultContent returns the storefront copy.
func DefaultContent() Content {
	return Content{
		Meta: Metadata{
			Title:       "Sports Gear Store - Premium Sports Equipment & Accessories",
			Description: "Gear Up for Victory – Shop Top Sports Equipment. Unleash your potential with premium gear for every sport.",
			Keywords:    "sports equipment, sports gear, athletic wear, fitness equipment, sports bags, workout gear",
			Author:      "Sports Gear Store",
			Robots:      "index, follow",
			ThemeColor:  "#e74c3c",
			OpenGraph: SocialCard{
				Title:       "Sports Gear Store - Premium Sports Equipment",
				Description: "Unleash your potential with premium gear for every sport.",
				Type:        "website",
				Locale:      "en_US",
			},
			Twitter: SocialCard{
				Title:       "Sports Gear Store - Premium Sports Equipment",
				Description: "Unleash your potential with premium gear for every sport.",
				Card:        "summary_large_image",
			},
		},
		Banner: "🎉 FREE SHIPPING! WELCOME! SITEWIDE SALE 🎉",
		Nav: []NavLink{
			{Label: "Products", Anchor: "#products"},
			{Label: "Categories", Anchor: "#categories"},
			{Label: "About", Anchor: "#about"},
		},
		Hero: Hero{
			Headline:      "Gear Up for Victory",
			Tagline:       "Shop Top Sports Equipment & Unleash Your Potential",
			PrimaryCTA:    "Shop Now",
			SecondaryCTA:  "View Categories",
			SecondaryLink: "#categories",
		},
		Products: SectionHeading{
			Title:    "Featured Products",
			Subtitle: "Discover our premium sports equipment and gear",
		},
		Features: SectionHeading{
			Title:    "Why Choose Us?",
			Subtitle: "Committed to empowering your fitness journey",
		},
		FeatureList: []Feature{
			{
				Icon:        "⭐",
				Title:       "Premium Quality Gear",
				Description: "From activewear to sports equipment, you can trust that our gear is made to last and designed to enhance your athletic performance.",
			},
			{
				Icon:        "💧",
				Title:       "Expert Recommendations",
				Description: "Whether you're beginner or seasoned pro, we provide personalized recommendations to match your needs.",
			},
			{
				Icon:        "🚚",
				Title:       "Fast & Free Shipping",
				Description: "We offer fast and free shipping on orders over $50, so you can get back to training, playing, and performing without the wait.",
			},
		},
		Testimonials: SectionHeading{Title: "What Our Clients Say"},
		Reviews: []Testimonial{
			{
				Name:    "Sarah L.",
				Title:   "Game-Changer for My Training",
				Content: "I've been using the gear from this store for a few months now, and it's truly a game-changer for my training. The quality is outstanding and the customer service is exceptional.",
				Rating:  5,
			},
			{
				Name:    "Daniel M.",
				Title:   "Perfect Fit for My Fitness Journey",
				Content: "The quality of the activewear and supplements here is fantastic. I started using their protein powder and have seen amazing results in my workouts.",
				Rating:  5,
			},
			{
				Name:    "Emily R.",
				Title:   "Top-Notch Sports Equipment!",
				Content: "I'm extremely impressed with the tennis rackets and balls I purchased from this store. The racket is lightweight yet powerful, and the balls have great bounce and durability.",
				Rating:  5,
			},
		},
		Newsletter: NewsletterCopy{
			Kicker:      "🔥 SEASONAL SALE • SEASONAL SALE • SEASONAL SALE 🔥",
			Title:       "Don't Miss Our Hot Deals!",
			Body:        "Be the first to know about new collections and exclusive offers.",
			Placeholder: "Enter your email",
			Button:      "Subscribe →",
		},
		Contact: SectionHeading{Title: "Contact Us"},
		Footer: Footer{
			About: []string{
				"🎉 Committed to empowering your fitness journey with top-quality gear and accessories.",
				"⚡ Combining performance, durability, and style to help you reach your goals.",
				"🏅 Whether you're training, competing, or staying active, we've got what you need to push your limits.",
			},
			QuickLinks: []string{"Search", "Privacy Policy", "Terms of Service", "Contact"},
			Social:     []string{"📷", "▶️", "🎵"},
			Copyright:  "© 2024 Sports Gear Store. All rights reserved.",
		},
	}
}
