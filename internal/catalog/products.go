package catalog

import "github.com/dieuclat/storefront/internal/entity"

// defaultProducts is the built-in catalog, in display order.
var defaultProducts = []entity.Product{
	{
		ID:            1,
		Name:          "Eternal Bloom Box",
		Price:         entity.MustParseMoney("₹2,400"),
		OriginalPrice: entity.MustParseMoney("₹2,800"),
		Rating:        4.9,
		ReviewsCount:  128,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/1.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/1.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/2.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/3.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/4.jpg",
		},
		Description:     "A beautiful arrangement of everlasting flowers in a premium keepsake box.",
		FullDescription: "Celebrate lasting love with our Eternal Bloom Box. These preserved flowers are treated with a special technique to maintain their natural beauty and softness for up to three years. Hand-arranged by our master florists in a luxurious linen-textured box, it's the perfect gift for anniversaries, birthdays, or just because.",
		Availability:    true,
		Category:        "Flower Box",
		Tag:             "Bestseller",
		TagColor:        "from-amber-400 to-orange-500",
		DeliveryInfo:    "Free delivery within 3-5 business days. Express delivery available in select cities.",
		Specs: []entity.Spec{
			{Label: "Flower Type", Value: "Preserved Roses & Hydrangeas"},
			{Label: "Box Material", Value: "Premium Linen-Textured Cardboard"},
			{Label: "Dimensions", Value: "20cm x 20cm x 15cm"},
			{Label: "Lifespan", Value: "1-3 Years"},
		},
		Reviews: []entity.Review{
			{User: "Sanya M.", Rating: 5, Comment: "Absolutely stunning! The flowers look so fresh and the box is very elegant.", Date: "Dec 12, 2025"},
			{User: "Rahul K.", Rating: 4, Comment: "Great gift, my wife loved it. Perfect for decoration.", Date: "Jan 05, 2026"},
		},
	},
	{
		ID:            2,
		Name:          "Velvet Rose Hamper",
		Price:         entity.MustParseMoney("₹2,800"),
		OriginalPrice: entity.MustParseMoney("₹3,200"),
		Rating:        5.0,
		ReviewsCount:  96,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/2.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/2.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/5.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/6.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/7.jpg",
		},
		Description:     "Luxury velvet box featuring premium red roses and artisan chocolates.",
		FullDescription: "Indulge in pure luxury with our Velvet Rose Hamper. This curated set combines the timeless elegance of deep red velvet roses with a selection of premium artisan chocolates. Each hamper is meticulously prepared to provide a multi-sensory experience that speaks of sophistication and care.",
		Availability:    true,
		Category:        "Hampers",
		Tag:             "New",
		TagColor:        "from-emerald-400 to-teal-500",
		DeliveryInfo:    "Ships within 48 hours. Carefully packaged in temperature-controlled boxes.",
		Specs: []entity.Spec{
			{Label: "Quantity", Value: "12-15 Premium Roses"},
			{Label: "Chocolates", Value: "8 Piece Artisan Selection"},
			{Label: "Box Finish", Value: "Premium Red Velvet"},
			{Label: "Personalization", Value: "Custom Note Included"},
		},
		Reviews: []entity.Review{
			{User: "Anjali P.", Rating: 5, Comment: "The velvet box is so soft and high quality. The chocolates were delicious!", Date: "Jan 20, 2026"},
		},
	},
	{
		ID:            3,
		Name:          "Linen & Lace Set",
		Price:         entity.MustParseMoney("₹3,200"),
		OriginalPrice: entity.MustParseMoney("₹3,600"),
		Rating:        4.8,
		ReviewsCount:  84,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/3.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/3.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/1.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/2.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/4.jpg",
		},
		Description:     "Delicate linen textures meeting intricate lace designs in a unique gift set.",
		FullDescription: "Our Linen & Lace Set is the epitome of vintage charm and modern grace. Featuring a hand-wrapped bouquet in sustainable linen fabric finished with delicate lace trimmings, this set is designed for those who appreciate the finer details. Includes a scented soy candle and a handwritten calligraphy card.",
		Availability:    true,
		Category:        "Curated Sets",
		DeliveryInfo:    "Standard delivery in 5-7 days. Sustainable packaging used.",
		Specs: []entity.Spec{
			{Label: "Fabric", Value: "100% Organic Linen"},
			{Label: "Lace", Value: "Cotton Crochet Lace"},
			{Label: "Extras", Value: "Scented Soy Candle"},
			{Label: "Packaging", Value: "Eco-friendly Box"},
		},
		Reviews: []entity.Review{
			{User: "Priya S.", Rating: 5, Comment: "Love the eco-friendly approach. It looks so classy!", Date: "Feb 01, 2026"},
		},
	},
	{
		ID:            4,
		Name:          "Golden Glow Basket",
		Price:         entity.MustParseMoney("₹4,500"),
		OriginalPrice: entity.MustParseMoney("₹5,000"),
		Rating:        4.7,
		ReviewsCount:  64,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/4.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/4.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/10.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/8.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/7.jpg",
		},
		Description:     "A grand basket filled with golden-themed treats and bright sunflowers.",
		FullDescription: "Bring sunshine into any room with the Golden Glow Basket. This centerpiece-worthy arrangement features vibrant sunflowers, gold-wrapped premium snacks, and a bottle of sparkling grape juice. Nestled in a reusable hand-woven wicker basket, it's a gift that keeps on giving.",
		Availability:    true,
		Category:        "Baskets",
		Tag:             "Limited",
		TagColor:        "from-purple-400 to-pink-500",
		DeliveryInfo:    "Express same-day delivery available in major metro areas.",
		Specs: []entity.Spec{
			{Label: "Flowers", Value: "6 Premium Sunflowers"},
			{Label: "Basket", Value: "Hand-woven Wicker"},
			{Label: "Drinks", Value: "Sparkling Juice (750ml)"},
			{Label: "Highlights", Value: "Gourmet Nuts & Dates"},
		},
		Reviews: []entity.Review{
			{User: "Vikram R.", Rating: 5, Comment: "The basket is huge and very well presented. Worth every penny.", Date: "Nov 15, 2025"},
		},
	},
	{
		ID:            5,
		Name:          "Morning Mist Set",
		Price:         entity.MustParseMoney("₹1,800"),
		OriginalPrice: entity.MustParseMoney("₹2,200"),
		Rating:        4.6,
		ReviewsCount:  42,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/5.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/5.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/1.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/6.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/3.jpg",
		},
		Description:     "Refreshing morning-themed gift set with herbal tea and fresh blooms.",
		FullDescription: "Start the day right with our Morning Mist Set. This calming collection features an assortment of organic herbal teas, a ceramic mug, and a mini-bouquet of fresh seasonal flowers in soft pastel hues. Designed to recreate the tranquility of a misty garden morning.",
		Availability:    true,
		Category:        "Sets",
		DeliveryInfo:    "Ships within 24-48 hours.",
		Specs: []entity.Spec{
			{Label: "Tea", Value: "3 Flavors Organic Herbal"},
			{Label: "Mug", Value: "Hand-painted Ceramic"},
			{Label: "Flower Count", Value: "5-7 Seasonal Stems"},
			{Label: "Mood", Value: "Relaxing & Refreshing"},
		},
		Reviews: []entity.Review{
			{User: "Meera G.", Rating: 4, Comment: "Very cute set. Perfect for a birthday gift for a tea lover.", Date: "Dec 05, 2025"},
		},
	},
	{
		ID:            6,
		Name:          "Midnight Serenade",
		Price:         entity.MustParseMoney("₹3,900"),
		OriginalPrice: entity.MustParseMoney("₹4,500"),
		Rating:        4.9,
		ReviewsCount:  89,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/6.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/6.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/7.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/10.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/2.jpg",
		},
		Description:     "Elegant evening gift set featuring dark-toned blooms and a luxury candle.",
		FullDescription: "Captivate the night with Midnight Serenade. This sophisticated set features deep purple and blue hued flowers, paired with a premium ebony candle and rich dark chocolate truffles. Ideal for evening celebrations or adding a touch of drama to home decor.",
		Availability:    true,
		Category:        "Premium",
		Tag:             "Trending",
		TagColor:        "from-blue-400 to-indigo-500",
		DeliveryInfo:    "Securely packaged for long-distance shipping.",
		Specs: []entity.Spec{
			{Label: "Candle", Value: "Sandalwood & Musk (40hr Burn)"},
			{Label: "Flowers", Value: "Dahlias & Deep Sea Roses"},
			{Label: "Chocolates", Value: "6pc Dark Truffles"},
			{Label: "Packaging", Value: "Matte Black Box"},
		},
		Reviews: []entity.Review{
			{User: "Karan J.", Rating: 5, Comment: "The packaging is top notch. The candle smells amazing.", Date: "Jan 15, 2026"},
		},
	},
	{
		ID:            7,
		Name:          "Rustic Charm Box",
		Price:         entity.MustParseMoney("₹2,100"),
		OriginalPrice: entity.MustParseMoney("₹2,500"),
		Rating:        4.5,
		ReviewsCount:  56,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/7.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/7.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/6.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/8.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/10.jpg",
		},
		Description:     "Earthy and warm gift box with dried flowers and wooden accessories.",
		FullDescription: "Embrace the beauty of nature with our Rustic Charm Box. This warm, earthy collection features a curated selection of dried wildflowers, a handcrafted wooden coaster set, and aromatic dried orange slices. It brings a cozy, farmhouse feel to any living space.",
		Availability:    true,
		Category:        "Boxes",
		DeliveryInfo:    "Available for pan-India shipping.",
		Specs: []entity.Spec{
			{Label: "Materials", Value: "Pine Wood & Burlap"},
			{Label: "Flowers", Value: "Dried Lavender & Oats"},
			{Label: "Coasters", Value: "Set of 4 Reclaimed Wood"},
			{Label: "Longevity", Value: "Indefinite (Dried)"},
		},
		Reviews: []entity.Review{
			{User: "Siddharth M.", Rating: 4, Comment: "Nice rustic look. Good for home decor.", Date: "Oct 20, 2025"},
		},
	},
	{
		ID:            8,
		Name:          "Crystal Clear Hamper",
		Price:         entity.MustParseMoney("₹5,200"),
		OriginalPrice: entity.MustParseMoney("₹6,000"),
		Rating:        5.0,
		ReviewsCount:  31,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/8.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/8.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/5.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/10.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/6.jpg",
		},
		Description:     "Premium glass-themed hamper with crystal vase and orchid blooms.",
		FullDescription: "Pure elegance personified. The Crystal Clear Hamper features rare orchids presented in a hand-cut crystal vase, accompanied by premium macarons and a bottle of imported rose water. For those who demand nothing but the absolute best.",
		Availability:    true,
		Category:        "Luxury",
		Tag:             "Premium",
		TagColor:        "from-slate-400 to-slate-600",
		DeliveryInfo:    "Hand-delivered by our special boutique team.",
		Specs: []entity.Spec{
			{Label: "Vase", Value: "24% Lead Hand-cut Crystal"},
			{Label: "Orchids", Value: "White Phalaenopsis"},
			{Label: "Sweet", Value: "12pc French Macarons"},
			{Label: "Exclusivity", Value: "Boutique Collection Only"},
		},
		Reviews: []entity.Review{
			{User: "Anita L.", Rating: 5, Comment: "Breathtaking. The vase is a collector's piece.", Date: "Feb 03, 2026"},
		},
	},
	{
		ID:            9,
		Name:          "Saffron Bliss Set",
		Price:         entity.MustParseMoney("₹3,400"),
		OriginalPrice: entity.MustParseMoney("₹3,800"),
		Rating:        4.8,
		ReviewsCount:  72,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/10.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/10.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/4.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/2.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/1.jpg",
		},
		Description:     "Traditional yet modern set featuring saffron-infused treats and marigolds.",
		FullDescription: "A festivity in a box. The Saffron Bliss Set celebrates tradition with a modern twist. Featuring high-grade Kashmiri saffron, traditional sweets with a contemporary flavor palette, and beautifully arranged marigolds. Perfect for festive gifting and auspicious occasions.",
		Availability:    true,
		Category:        "Festive",
		DeliveryInfo:    "Festive season delivery timings may apply.",
		Specs: []entity.Spec{
			{Label: "Saffron", Value: "Grade A+ Kashmiri (2g)"},
			{Label: "Flowers", Value: "Double Petal Marigolds"},
			{Label: "Sweets", Value: "Sugar-free Artisan Mithai"},
			{Label: "Box Design", Value: "Gold Foil Traditional Motif"},
		},
		Reviews: []entity.Review{
			{User: "Hitesh V.", Rating: 5, Comment: "Great for Diwali gifting. Excellent quality of saffron.", Date: "Oct 30, 2025"},
		},
	},
	{
		ID:            301,
		Name:          "Dried Flower Wall Art",
		Price:         entity.MustParseMoney("₹1,899"),
		OriginalPrice: entity.MustParseMoney("₹2,499"),
		Rating:        4.8,
		ReviewsCount:  54,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/6.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/6.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/7.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/10.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/5.jpg",
		},
		Description:     "Beautiful preserved blooms arranged in a premium frame.",
		FullDescription: "Transform your walls into a living gallery with our Dried Flower Wall Art. Each piece is unique, featuring a curated selection of preserved blooms, moss, and foliage meticulously arranged within a high-quality solid wood shadow box frame. No maintenance required, just pure aesthetic joy.",
		Availability:    true,
		Category:        "Wall Art",
		Tag:             "Deal",
		TagColor:        "from-brand-rose to-brand-rose-light",
		DeliveryInfo:    "Carefully crated for safe wall-to-wall delivery.",
		Specs: []entity.Spec{
			{Label: "Frame", Value: "Solid Oak Wood"},
			{Label: "Glass", Value: "Museum-quality UV Protection"},
			{Label: "Size", Value: "30cm x 40cm"},
			{Label: "Mounting", Value: "Ready to hang"},
		},
		Reviews: []entity.Review{
			{User: "Sonali T.", Rating: 5, Comment: "Adds such a lovely touch to my bedroom. Very unique.", Date: "Dec 22, 2025"},
		},
	},
	{
		ID:            302,
		Name:          "Luxury Gift Hamper",
		Price:         entity.MustParseMoney("₹2,199"),
		OriginalPrice: entity.MustParseMoney("₹2,799"),
		Rating:        4.9,
		ReviewsCount:  82,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/7.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/7.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/1.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/2.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/8.jpg",
		},
		Description:     "Curated selection of artisan treats and blooms.",
		FullDescription: "The ultimate expression of thoughtfulness. Our Luxury Gift Hamper brings together the very best of our collections. From hand-poured candles to gourmet delights and our signature floral arrangements, this hamper is designed to wow at first sight and delight with every detail discovered.",
		Availability:    true,
		Category:        "Deals",
		Tag:             "Deal",
		TagColor:        "from-brand-rose to-brand-rose-light",
		DeliveryInfo:    "Includes a personalized handwritten note.",
		Specs: []entity.Spec{
			{Label: "Combo", Value: "Flowers + Snacks + Candle"},
			{Label: "Theme", Value: "Signature Blush"},
			{Label: "Occasion", Value: "Versatile Gifting"},
			{Label: "Packaging", Value: "Branded Rigid Box"},
		},
		Reviews: []entity.Review{
			{User: "Rishi P.", Rating: 5, Comment: "Excellent value for money. The variety is great.", Date: "Jan 10, 2026"},
		},
	},
	{
		ID:            303,
		Name:          "Signature Bloom Box",
		Price:         entity.MustParseMoney("₹2,499"),
		OriginalPrice: entity.MustParseMoney("₹3,199"),
		Rating:        4.7,
		ReviewsCount:  110,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/10.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/10.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/4.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/3.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/5.jpg",
		},
		Description:     "Our bestselling arrangement in a keepsake box.",
		FullDescription: "Our Signature Bloom Box is what started it all. A perfectly balanced arrangement of seasonal flowers, chosen for their longevity and fragrance, presented in our iconic circular box. It's the gold standard of modern floral gifting.",
		Availability:    true,
		Category:        "Deals",
		Tag:             "Deal",
		TagColor:        "from-brand-rose to-brand-rose-light",
		DeliveryInfo:    "Standard 3-5 day delivery.",
		Specs: []entity.Spec{
			{Label: "Box Shape", Value: "Iconic Circular"},
			{Label: "Flower Density", Value: "Premium / Full"},
			{Label: "Maintenance", Value: "Water sponge base"},
			{Label: "Sustainability", Value: "Recyclable Box"},
		},
		Reviews: []entity.Review{
			{User: "Nisha K.", Rating: 4, Comment: "Beautiful and lasted almost a week!", Date: "Jan 28, 2026"},
		},
	},
	{
		ID:            11,
		Name:          "The Bloom Box",
		Price:         entity.MustParseMoney("₹2,800"),
		OriginalPrice: entity.MustParseMoney("₹3,400"),
		Rating:        4.9,
		ReviewsCount:  156,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/1.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/1.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/2.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/3.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/4.jpg",
		},
		Description:     "Our signature bloom box featuring a vibrant mix of seasonal flowers.",
		FullDescription: "The Bloom Box is our flagship product, designed to bring joy and color to any space. Each box is hand-packed with the freshest seasonal blooms, chosen for their beauty and longevity. Presented in our premium circular gift box with a waterproof liner.",
		Availability:    true,
		Category:        "Curated Sets",
		DeliveryInfo:    "Ships within 24 hours of order.",
		Specs: []entity.Spec{
			{Label: "Flower Count", Value: "18-22 Premium Stems"},
			{Label: "Box Type", Value: "Signature Round"},
			{Label: "Watering", Value: "2-3 times per week"},
		},
		Reviews: []entity.Review{
			{User: "Sonia P.", Rating: 5, Comment: "Simply beautiful. The colors are so vibrant!", Date: "Jan 15, 2026"},
		},
	},
	{
		ID:            12,
		Name:          "Sweet Indulgence",
		Price:         entity.MustParseMoney("₹1,950"),
		OriginalPrice: entity.MustParseMoney("₹2,400"),
		Rating:        4.8,
		ReviewsCount:  78,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/2.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/2.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/5.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/6.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/1.jpg",
		},
		Description:     "A sweet collection of flowers paired with hand-crafted chocolates.",
		FullDescription: "Indulge your senses with this delightful pairing. Sweet Indulgence brings together a charming petite bouquet and a box of our most popular artisan truffles. It's a perfect thank-you, birthday, or just-because gift.",
		Availability:    true,
		Category:        "Curated Sets",
		DeliveryInfo:    "Includes cold-chain packaging for chocolates.",
		Specs: []entity.Spec{
			{Label: "Sweets", Value: "6pc Artisan Truffles"},
			{Label: "Flowers", Value: "Pastel Seasonal Mix"},
			{Label: "Style", Value: "European Bouquet"},
		},
		Reviews: []entity.Review{
			{User: "Amit G.", Rating: 5, Comment: "The chocolates were amazing and the flowers stayed fresh for days.", Date: "Dec 02, 2025"},
		},
	},
	{
		ID:            13,
		Name:          "Linen & Love",
		Price:         entity.MustParseMoney("₹3,200"),
		OriginalPrice: entity.MustParseMoney("₹3,800"),
		Rating:        5.0,
		ReviewsCount:  42,
		Image:         "https://ik.imagekit.io/72whyqnco/Products/3.jpg",
		Images: []string{
			"https://ik.imagekit.io/72whyqnco/Products/3.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/1.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/4.jpg",
			"https://ik.imagekit.io/72whyqnco/Products/10.jpg",
		},
		Description:     "A premium linen-wrapped bouquet featuring rare flower varieties.",
		FullDescription: "Linen & Love is for the true flower connoisseur. Wrapped in organic, sustainable linen and tied with raw silk ribbon, this arrangement features a selection of rare and exotic blooms that speak of timeless elegance and deep affection.",
		Availability:    true,
		Category:        "Curated Sets",
		DeliveryInfo:    "Special handling included for delicate blooms.",
		Specs: []entity.Spec{
			{Label: "Wrapping", Value: "100% Organic Linen"},
			{Label: "Ribbon", Value: "Raw Silk Hand-dyed"},
			{Label: "Flower Type", Value: "Exotica Selection"},
		},
		Reviews: []entity.Review{
			{User: "Rina T.", Rating: 5, Comment: "The wrapping is so unique and high-quality. Truly a premium gift.", Date: "Feb 05, 2026"},
		},
	},
}
