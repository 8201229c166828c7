package difficulty

// wordFrequencies approximates how often common blog and search terms
// appear, used by the frequency-informed policy. Higher frequency means
// higher competition for the containing keyword.
var wordFrequencies = map[string]float64{
	"how": 850000, "what": 750000, "best": 680000, "top": 620000,
	"guide": 450000, "tips": 380000, "review": 320000, "free": 280000,
	"tutorial": 240000, "business": 220000, "marketing": 180000,
	"seo": 160000, "growth": 140000, "startup": 120000, "tools": 110000,
	"strategy": 95000, "success": 85000, "online": 75000, "digital": 65000,
	"beginner": 55000, "advanced": 45000, "complete": 40000, "ultimate": 35000,
	"simple": 30000, "easy": 28000, "quick": 25000, "step": 22000,
	"effective": 20000, "proven": 18000, "examples": 16000, "case": 15000,
	"study": 14000, "method": 13000, "technique": 12000, "approach": 11000,
	"framework": 10000, "process": 9500, "system": 9000, "hack": 8500,
	"secret": 8000, "trick": 7500, "mistake": 7000, "common": 6500,
	"popular": 6000, "trending": 5500, "latest": 5000, "new": 4800,
	"updated": 4600, "modern": 4400, "profitable": 4200, "money": 4000,
	"entrepreneur": 3800, "founder": 3600, "indie": 3400, "solo": 3200,
	"small": 3000, "website": 2800, "blog": 2600, "content": 2400,
	"optimization": 2200, "rank": 2000, "ranking": 1800, "google": 1600,
	"search": 1400, "traffic": 1200, "conversion": 1000, "funnel": 900,
	"leads": 800, "sales": 700, "revenue": 600, "profit": 500,
}
