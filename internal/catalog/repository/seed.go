package repository

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/stylediscover/server/internal/catalog/domain"
)

// outfitFamily describes one generated product line of the seed dataset.
// Seasons cycle per item when more than one is given.
type outfitFamily struct {
	baseID    uint
	count     int
	name      string
	category  string
	style     string
	seasons   []string
	occasion  string
	colorSets [][]string
	basePrice float64
	priceStep float64
	brands    []string
	desc      string
	tags      []string
}

var outfitFamilies = []outfitFamily{
	{1, 50, "Casual Denim Look", "Casual", "Relaxed", []string{"Spring", "Fall"}, "Everyday",
		[][]string{{"Blue", "White"}, {"Black", "Gray"}, {"Navy", "Cream"}}, 45, 2,
		[]string{"Levi's", "Gap", "Uniqlo", "H&M"},
		"Comfortable denim outfit perfect for casual outings and everyday wear.",
		[]string{"denim", "comfortable", "versatile", "casual"}},
	{51, 50, "Athleisure Set", "Activewear", "Sporty", []string{domain.SeasonAll}, "Gym",
		[][]string{{"Black", "White"}, {"Gray", "Pink"}, {"Navy", "Mint"}}, 65, 3,
		[]string{"Nike", "Adidas", "Lululemon", "Under Armour"},
		"Stylish athleisure wear that transitions from workout to street.",
		[]string{"athletic", "comfortable", "trendy", "versatile"}},
	{101, 50, "Cozy Knit Outfit", "Casual", "Cozy", []string{"Fall", "Winter"}, "Weekend",
		[][]string{{"Beige", "Cream"}, {"Gray", "White"}, {"Brown", "Tan"}}, 55, 2,
		[]string{"Zara", "COS", "Everlane", "Mango"},
		"Soft and cozy knitwear perfect for relaxed weekends.",
		[]string{"knit", "cozy", "warm", "comfortable"}},
	{151, 50, "Summer Casual", "Casual", "Breezy", []string{"Summer"}, "Vacation",
		[][]string{{"White", "Blue"}, {"Yellow", "White"}, {"Pink", "Coral"}}, 40, 2,
		[]string{"Old Navy", "Target", "Forever 21", "ASOS"},
		"Light and airy summer outfits for warm weather adventures.",
		[]string{"summer", "light", "breathable", "vacation"}},
	{201, 50, "Power Suit", "Business", "Professional", []string{domain.SeasonAll}, "Work",
		[][]string{{"Black", "White"}, {"Navy", "White"}, {"Gray", "Blue"}}, 150, 5,
		[]string{"Hugo Boss", "Theory", "Ann Taylor", "Banana Republic"},
		"Sharp and sophisticated business suit for professional settings.",
		[]string{"professional", "formal", "sophisticated", "business"}},
	{251, 50, "Business Casual", "Business", "Smart Casual", []string{domain.SeasonAll}, "Office",
		[][]string{{"Navy", "White"}, {"Beige", "Blue"}, {"Gray", "Pink"}}, 85, 3,
		[]string{"J.Crew", "Banana Republic", "Everlane", "Uniqlo"},
		"Polished business casual look perfect for modern workplaces.",
		[]string{"business-casual", "polished", "versatile", "modern"}},
	{301, 50, "Executive Look", "Business", "Executive", []string{domain.SeasonAll}, "Meeting",
		[][]string{{"Charcoal", "White"}, {"Navy", "Cream"}, {"Black", "Gray"}}, 200, 8,
		[]string{"Armani", "Ralph Lauren", "Brooks Brothers", "Hugo Boss"},
		"Premium executive attire for high-level business meetings.",
		[]string{"executive", "premium", "authoritative", "luxury"}},
	{351, 50, "Creative Professional", "Business", "Creative", []string{domain.SeasonAll}, "Creative Work",
		[][]string{{"Black", "White"}, {"Burgundy", "Gray"}, {"Forest", "Tan"}}, 95, 4,
		[]string{"COS", "Acne Studios", "Ganni", "Sandro"},
		"Stylish professional wear for creative industries.",
		[]string{"creative", "artistic", "unique", "professional"}},
	{401, 50, "Cocktail Dress", "Evening", "Elegant", []string{domain.SeasonAll}, "Cocktail Party",
		[][]string{{"Black"}, {"Navy"}, {"Burgundy"}, {"Emerald"}}, 120, 6,
		[]string{"Diane von Furstenberg", "Ted Baker", "Reiss", "Karen Millen"},
		"Sophisticated cocktail dress perfect for evening events.",
		[]string{"elegant", "sophisticated", "evening", "formal"}},
	{451, 50, "Formal Gown", "Evening", "Glamorous", []string{domain.SeasonAll}, "Gala",
		[][]string{{"Black"}, {"Navy"}, {"Red"}, {"Gold"}}, 250, 10,
		[]string{"Vera Wang", "Oscar de la Renta", "Carolina Herrera", "Marchesa"},
		"Stunning formal gown for special occasions and galas.",
		[]string{"glamorous", "formal", "luxury", "special-occasion"}},
	{501, 50, "Date Night Look", "Evening", "Romantic", []string{domain.SeasonAll}, "Date",
		[][]string{{"Blush", "Gold"}, {"Black", "Silver"}, {"Wine", "Rose Gold"}}, 80, 4,
		[]string{"Free People", "Anthropologie", "Reformation", "Zimmermann"},
		"Romantic and stylish outfit perfect for date nights.",
		[]string{"romantic", "stylish", "date-night", "feminine"}},
	{551, 50, "Party Outfit", "Evening", "Trendy", []string{domain.SeasonAll}, "Party",
		[][]string{{"Sequin Gold"}, {"Metallic Silver"}, {"Neon Pink"}, {"Electric Blue"}}, 90, 5,
		[]string{"ASOS", "Boohoo", "PrettyLittleThing", "Missguided"},
		"Fun and trendy party outfit that stands out.",
		[]string{"party", "trendy", "fun", "statement"}},
	{601, 50, "Spring Floral", "Seasonal", "Feminine", []string{"Spring"}, "Brunch",
		[][]string{{"Pink", "Green"}, {"Yellow", "White"}, {"Lavender", "Mint"}}, 60, 3,
		[]string{"Kate Spade", "Tory Burch", "Marc Jacobs", "Coach"},
		"Fresh spring outfit with beautiful floral patterns.",
		[]string{"spring", "floral", "feminine", "fresh"}},
	{651, 50, "Summer Beach", "Seasonal", "Bohemian", []string{"Summer"}, "Beach",
		[][]string{{"Turquoise", "White"}, {"Coral", "Cream"}, {"Sunset Orange", "Gold"}}, 45, 2,
		[]string{"Billabong", "Roxy", "Free People", "Spell & The Gypsy"},
		"Breezy summer outfit perfect for beach days.",
		[]string{"summer", "beach", "bohemian", "relaxed"}},
	{701, 50, "Fall Layers", "Seasonal", "Layered", []string{"Fall"}, "Casual",
		[][]string{{"Rust", "Cream"}, {"Burgundy", "Tan"}, {"Forest", "Camel"}}, 75, 4,
		[]string{"Madewell", "Everlane", "Ganni", "Acne Studios"},
		"Perfectly layered fall outfit with rich autumn colors.",
		[]string{"fall", "layered", "cozy", "autumn"}},
	{751, 50, "Winter Chic", "Seasonal", "Sophisticated", []string{"Winter"}, "City",
		[][]string{{"Black", "Gray"}, {"Navy", "Camel"}, {"Charcoal", "Cream"}}, 120, 6,
		[]string{"Max Mara", "The Row", "Toteme", "Lemaire"},
		"Chic winter outfit that combines warmth with style.",
		[]string{"winter", "chic", "warm", "sophisticated"}},
	{801, 50, "Urban Edge", "Street", "Edgy", []string{domain.SeasonAll}, "Street",
		[][]string{{"Black", "White"}, {"Gray", "Red"}, {"Black", "Neon"}}, 70, 3,
		[]string{"Off-White", "Supreme", "Stussy", "Fear of God"},
		"Bold street style with urban edge and attitude.",
		[]string{"street", "edgy", "urban", "bold"}},
	{851, 50, "Vintage Inspired", "Street", "Vintage", []string{domain.SeasonAll}, "Creative",
		[][]string{{"Mustard", "Brown"}, {"Rust", "Cream"}, {"Olive", "Tan"}}, 55, 3,
		[]string{"Urban Outfitters", "Vintage", "Thrifted", "American Apparel"},
		"Vintage-inspired street style with retro charm.",
		[]string{"vintage", "retro", "unique", "creative"}},
	{901, 50, "Minimalist Street", "Street", "Minimalist", []string{domain.SeasonAll}, "Everyday",
		[][]string{{"White", "Black"}, {"Gray", "White"}, {"Beige", "Black"}}, 65, 3,
		[]string{"COS", "Arket", "Uniqlo", "Everlane"},
		"Clean minimalist street style with perfect proportions.",
		[]string{"minimalist", "clean", "modern", "simple"}},
	{951, 50, "Hypebeast Look", "Street", "Hypebeast", []string{domain.SeasonAll}, "Street",
		[][]string{{"Neon", "Black"}, {"White", "Red"}, {"Multi-Color"}}, 150, 8,
		[]string{"Balenciaga", "Vetements", "Yeezy", "Travis Scott"},
		"High-end streetwear with hypebeast appeal.",
		[]string{"hypebeast", "streetwear", "luxury", "trendy"}},
	{1001, 50, "Boho Chic", "Bohemian", "Bohemian", []string{"Spring", "Summer"}, "Festival",
		[][]string{{"Earth Tones"}, {"Jewel Tones"}, {"Sunset Colors"}}, 80, 4,
		[]string{"Free People", "Spell", "Zimmermann", "For Love & Lemons"},
		"Free-spirited bohemian outfit with artistic flair.",
		[]string{"bohemian", "free-spirited", "artistic", "festival"}},
}

// SeedOutfits generates the static catalog dataset (1050 outfits across 21
// product lines). Each item gets a deterministic per-id image gallery.
func SeedOutfits() []domain.Outfit {
	var outfits []domain.Outfit
	for _, f := range outfitFamilies {
		for i := 0; i < f.count; i++ {
			id := f.baseID + uint(i)
			gallery := []string{
				fmt.Sprintf("https://picsum.photos/seed/%d-a/1200/800", id),
				fmt.Sprintf("https://picsum.photos/seed/%d-b/1200/800", id),
				fmt.Sprintf("https://picsum.photos/seed/%d-c/1200/800", id),
			}
			outfits = append(outfits, domain.Outfit{
				ID:          id,
				Name:        fmt.Sprintf("%s %d", f.name, i+1),
				Category:    f.category,
				Style:       f.style,
				Season:      f.seasons[i%len(f.seasons)],
				Occasion:    f.occasion,
				Colors:      pq.StringArray(f.colorSets[i%len(f.colorSets)]),
				Price:       f.basePrice + float64(i)*f.priceStep,
				Brand:       f.brands[i%len(f.brands)],
				Image:       gallery[0],
				Images:      pq.StringArray(gallery),
				Description: f.desc,
				Tags:        pq.StringArray(f.tags),
				Rating:      3.5 + float64(id%3)*0.5,
				SKU:         fmt.Sprintf("SD-%04d", id),
			})
		}
	}
	return outfits
}
