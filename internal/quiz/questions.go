package quiz

// Question is one step of the style quiz. Options are ordered by axis:
// option i votes for axis i.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Questions is the fixed question set presented by both clients.
var Questions = []Question{
	{
		ID:       1,
		Question: "What's your ideal weekend outfit?",
		Options: []string{
			"Cozy oversized sweater and leggings",
			"Tailored blazer with dark jeans",
			"Flowy maxi dress with statement jewelry",
			"Matching athleisure set",
			"Vintage band tee with distressed denim",
			"Minimalist white tee and trousers",
		},
	},
	{
		ID:       2,
		Question: "Which color palette speaks to you most?",
		Options: []string{
			"Warm neutrals: beige, cream, camel",
			"Classic monochromes: black, white, gray",
			"Rich jewel tones: emerald, sapphire, ruby",
			"Soft pastels: blush, lavender, mint",
			"Earth tones: rust, olive, mustard",
			"Bold brights: electric blue, hot pink, neon",
		},
	},
	{
		ID:       3,
		Question: "Your shopping approach is:",
		Options: []string{
			"I buy versatile pieces that mix and match",
			"I invest in high-quality timeless classics",
			"I love unique, statement pieces that tell a story",
			"I prioritize comfort and functionality above all",
			"I hunt for vintage and one-of-a-kind finds",
			"I follow the latest trends and seasonal must-haves",
		},
	},
	{
		ID:       4,
		Question: "For a night out, you'd choose:",
		Options: []string{
			"Something comfortable yet put-together",
			"A timeless, elegant ensemble",
			"Something bold and eye-catching",
			"Casual-chic with interesting details",
			"A vintage-inspired look with character",
			"The latest trendy outfit from social media",
		},
	},
	{
		ID:       5,
		Question: "Your accessories style is:",
		Options: []string{
			"Minimal and functional pieces",
			"Classic and refined selections",
			"Bold statement pieces that make an impact",
			"Eclectic and personal collections",
			"Vintage and antique treasures",
			"Trendy pieces that complement current looks",
		},
	},
	{
		ID:       6,
		Question: "Your ideal work outfit includes:",
		Options: []string{
			"Comfortable separates that look polished",
			"A perfectly tailored suit or dress",
			"Creative pieces that express personality",
			"Relaxed but professional attire",
			"Unique vintage pieces with modern touches",
			"On-trend professional wear",
		},
	},
	{
		ID:       7,
		Question: "Your vacation wardrobe consists of:",
		Options: []string{
			"Comfortable, versatile pieces for any activity",
			"Elegant resort wear and classic swimwear",
			"Bohemian dresses and statement cover-ups",
			"Practical activewear and casual basics",
			"Unique local finds and vintage discoveries",
			"Instagram-worthy outfits for every occasion",
		},
	},
	{
		ID:       8,
		Question: "Your footwear collection is dominated by:",
		Options: []string{
			"Comfortable sneakers and flat boots",
			"Classic pumps and leather loafers",
			"Statement heels and unique boots",
			"Athletic shoes and comfortable sandals",
			"Vintage boots and retro sneakers",
			"The latest trendy shoes and seasonal styles",
		},
	},
}
