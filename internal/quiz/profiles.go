package quiz

// AxisCount is the number of style axes scored by the quiz. Every question
// offers exactly one option per axis, in axis order.
const AxisCount = 6

// StyleProfile is a quiz result. The profile set is fixed at process start
// and never mutated; OutfitTypes and Colors seed the quiz-derived filter
// criteria (lowercased) once a shopper finalizes the quiz.
type StyleProfile struct {
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Traits          []string `json:"traits"`
	Recommendations []string `json:"recommendations"`
	OutfitTypes     []string `json:"outfit_types"`
	Colors          []string `json:"colors"`
}

// Profiles holds one StyleProfile per axis, indexed by axis:
// casual, classic, creative, modern, vintage, trendy.
var Profiles = [AxisCount]StyleProfile{
	{
		Type:        "casual",
		Title:       "Effortless Casual",
		Description: "Your style is comfortable, versatile, and effortlessly chic. You love pieces that work for multiple occasions and prioritize comfort without sacrificing style.",
		Traits:      []string{"Comfortable", "Versatile", "Effortless", "Practical"},
		Recommendations: []string{
			"Stock up on well-fitting jeans and comfortable knits",
			"Choose versatile pieces that mix and match easily",
			"Invest in comfortable yet stylish footwear",
			"Layer with cardigans and lightweight jackets",
		},
		OutfitTypes: []string{"Casual", "Activewear", "Street"},
		Colors:      []string{"Beige", "Gray", "Navy", "White", "Denim Blue"},
	},
	{
		Type:        "classic",
		Title:       "Timeless Elegance",
		Description: "You have a sophisticated, refined style that never goes out of fashion. You appreciate quality over quantity and prefer clean, polished looks.",
		Traits:      []string{"Timeless", "Sophisticated", "Refined", "Quality-focused"},
		Recommendations: []string{
			"Invest in a well-tailored blazer and classic trench coat",
			"Build a capsule wardrobe with neutral colors",
			"Choose classic pieces like white shirts and little black dresses",
			"Opt for quality leather accessories and classic pumps",
		},
		OutfitTypes: []string{"Business", "Evening", "Seasonal"},
		Colors:      []string{"Black", "White", "Navy", "Camel", "Gray"},
	},
	{
		Type:        "creative",
		Title:       "Artistic Expression",
		Description: "You use fashion as a form of self-expression and aren't afraid to experiment with bold colors, patterns, and unique pieces that reflect your personality.",
		Traits:      []string{"Creative", "Bold", "Expressive", "Unique"},
		Recommendations: []string{
			"Experiment with bold patterns and textures",
			"Mix unexpected color combinations",
			"Seek out unique vintage or artisanal pieces",
			"Use accessories to add creative flair to any outfit",
		},
		OutfitTypes: []string{"Bohemian", "Street", "Evening"},
		Colors:      []string{"Jewel Tones", "Earth Tones", "Bold Brights", "Rich Colors"},
	},
	{
		Type:        "modern",
		Title:       "Modern Minimalist",
		Description: "Your aesthetic is clean, contemporary, and purposeful. You appreciate sleek lines, quality fabrics, and a curated wardrobe of versatile essentials.",
		Traits:      []string{"Minimalist", "Contemporary", "Clean", "Purposeful"},
		Recommendations: []string{
			"Focus on clean lines and structured silhouettes",
			"Choose a neutral color palette with occasional pops of color",
			"Invest in modern, functional pieces",
			"Keep accessories simple and geometric",
		},
		OutfitTypes: []string{"Business", "Street", "Casual"},
		Colors:      []string{"White", "Black", "Gray", "Beige", "Minimal Palette"},
	},
	{
		Type:        "vintage",
		Title:       "Vintage Soul",
		Description: "You're drawn to the charm and character of past eras. Your style combines vintage finds with modern pieces, creating unique and personal looks.",
		Traits:      []string{"Nostalgic", "Unique", "Character-rich", "Individual"},
		Recommendations: []string{
			"Hunt for authentic vintage pieces in thrift stores",
			"Mix vintage items with modern basics",
			"Experiment with retro silhouettes and patterns",
			"Collect vintage accessories and statement jewelry",
		},
		OutfitTypes: []string{"Street", "Bohemian", "Casual"},
		Colors:      []string{"Earth Tones", "Vintage Hues", "Mustard", "Rust", "Olive"},
	},
	{
		Type:        "trendy",
		Title:       "Fashion Forward",
		Description: "You love staying current with the latest trends and aren't afraid to try new styles. Your wardrobe reflects the most current fashion movements.",
		Traits:      []string{"Trendy", "Current", "Experimental", "Fashion-conscious"},
		Recommendations: []string{
			"Follow fashion influencers and runway trends",
			"Experiment with seasonal color palettes",
			"Try new silhouettes and trending pieces",
			"Mix high and low fashion for accessible trends",
		},
		OutfitTypes: []string{"Street", "Evening", "Seasonal"},
		Colors:      []string{"Trending Colors", "Seasonal Palettes", "Bold Statements"},
	},
}
