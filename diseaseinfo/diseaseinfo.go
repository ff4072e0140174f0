// Package diseaseinfo is the static crop-disease knowledge base: a read-only
// table mapping classifier labels to advisory content (symptoms, treatment,
// prevention, severity). It is built once at package init and never mutated,
// so lookups are safe from any number of request goroutines.
package diseaseinfo

import (
	"disease-predict-pipeline/labels"
)

// Severity levels for a diagnosed disease.
const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// Entry holds the advisory content for one disease.
type Entry struct {
	Name       string   `json:"name"`
	Severity   string   `json:"severity"`
	Symptoms   []string `json:"symptoms"`
	Treatment  []string `json:"treatment"`
	Prevention []string `json:"prevention"`

	// Classifier class names that resolve to this entry.
	aliases []string
}

var table map[string]*Entry

func init() {
	table = make(map[string]*Entry, len(entries)*2)
	for i := range entries {
		e := &entries[i]
		register(e.Name, e)
		for _, alias := range e.aliases {
			register(alias, e)
			register(labels.DiseasePart(alias), e)
		}
	}
}

func register(label string, e *Entry) {
	key := labels.Key(label)
	if key == "" {
		return
	}
	if _, exists := table[key]; !exists {
		table[key] = e
	}
}

// Lookup resolves a classifier label to its knowledge-base entry. The label
// is canonicalized first, so "Tomato___Late_blight", "Tomato_Late_Blight"
// and "tomato late blight" all resolve to the same entry. When no entry
// matches, a generic advisory entry is returned and ok is false.
func Lookup(label string) (entry *Entry, ok bool) {
	if e, found := table[labels.Key(label)]; found {
		return e, true
	}
	if e, found := table[labels.Key(labels.DiseasePart(label))]; found {
		return e, true
	}
	return Generic(labels.Prettify(label), SeverityMedium), false
}

// Generic builds the fallback advisory entry used for labels the knowledge
// base does not cover. The content is intentionally broad but never empty.
func Generic(name, severity string) *Entry {
	if severity == "" {
		severity = SeverityMedium
	}
	return &Entry{
		Name:     name,
		Severity: severity,
		Symptoms: []string{
			"Leaf discoloration or spots",
			"Wilting or drooping leaves",
			"Stunted growth",
			"Unusual leaf patterns",
		},
		Treatment: []string{
			"Remove affected plant parts",
			"Apply appropriate fungicide or pesticide",
			"Improve air circulation around plants",
			"Ensure proper watering schedule",
		},
		Prevention: []string{
			"Use disease-resistant varieties",
			"Practice crop rotation",
			"Maintain proper plant spacing",
			"Monitor plants regularly for early detection",
		},
	}
}

// All returns every distinct entry in the knowledge base.
func All() []*Entry {
	result := make([]*Entry, len(entries))
	for i := range entries {
		result[i] = &entries[i]
	}
	return result
}

var entries = []Entry{
	{
		Name:     "Tomato Late Blight",
		Severity: SeverityHigh,
		aliases:  []string{"Tomato___Late_blight"},
		Symptoms: []string{
			"Large dark brown blotches on leaves with pale green borders",
			"White fuzzy mold on the underside of leaves in humid weather",
			"Dark greasy lesions on stems and fruit",
			"Rapid collapse of entire plants within days",
		},
		Treatment: []string{
			"Remove and destroy infected plants immediately, do not compost",
			"Apply copper-based fungicide to remaining plants",
			"Harvest healthy fruit early if infection is spreading",
		},
		Prevention: []string{
			"Plant certified disease-free seedlings",
			"Water at the base of plants early in the day",
			"Space plants for good air circulation",
			"Avoid overhead irrigation during cool wet periods",
		},
	},
	{
		Name:     "Potato Late Blight",
		Severity: SeverityHigh,
		aliases:  []string{"Potato___Late_blight"},
		Symptoms: []string{
			"Water-soaked dark lesions on leaf tips and edges",
			"White mold growth on leaf undersides",
			"Brown dry rot spreading through tubers",
			"Foul smell from rotting foliage in wet weather",
		},
		Treatment: []string{
			"Destroy infected foliage before harvesting tubers",
			"Apply protectant fungicide at first sign of disease",
			"Harvest tubers in dry weather and cure before storage",
		},
		Prevention: []string{
			"Use certified seed potatoes",
			"Destroy volunteer potatoes and cull piles",
			"Hill soil over tubers to shield them from spores",
			"Rotate away from potato and tomato for at least two seasons",
		},
	},
	{
		Name:     "Tomato Early Blight",
		Severity: SeverityMedium,
		aliases:  []string{"Tomato___Early_blight"},
		Symptoms: []string{
			"Dark spots with concentric rings on older leaves",
			"Yellowing around leaf spots",
			"Leaf drop starting from the bottom of the plant",
			"Sunken dark lesions on fruit near the stem",
		},
		Treatment: []string{
			"Prune and discard affected lower leaves",
			"Apply fungicide labeled for early blight every 7-10 days",
			"Mulch around the base to stop soil splash",
		},
		Prevention: []string{
			"Rotate crops on a three-year cycle",
			"Stake or cage plants to keep foliage off the ground",
			"Water the soil, not the leaves",
		},
	},
	{
		Name:     "Potato Early Blight",
		Severity: SeverityMedium,
		aliases:  []string{"Potato___Early_blight"},
		Symptoms: []string{
			"Brown spots with target-like concentric rings on lower leaves",
			"Leaves yellow and wither from the bottom up",
			"Dark sunken spots on tubers with dry leathery rot",
		},
		Treatment: []string{
			"Remove infected leaves during dry weather",
			"Apply an approved fungicide at 7-14 day intervals",
			"Maintain plant vigor with balanced fertilization",
		},
		Prevention: []string{
			"Rotate with non-solanaceous crops",
			"Avoid wounding tubers at harvest",
			"Remove plant debris after harvest",
		},
	},
	{
		Name:     "Corn Common Rust",
		Severity: SeverityMedium,
		aliases:  []string{"Corn___Common_rust", "Corn_(maize)___Common_rust_"},
		Symptoms: []string{
			"Small cinnamon-brown pustules on both leaf surfaces",
			"Pustules darken to black late in the season",
			"Chlorotic streaks around clustered pustules",
		},
		Treatment: []string{
			"Apply foliar fungicide when pustules appear before tasseling",
			"Remove heavily infected plants from small plots",
		},
		Prevention: []string{
			"Plant rust-resistant hybrids",
			"Plant early to avoid peak spore season",
			"Scout fields weekly from knee-high stage onward",
		},
	},
	{
		Name:     "Corn Northern Leaf Blight",
		Severity: SeverityMedium,
		aliases:  []string{"Corn___Northern_Leaf_Blight", "Corn_(maize)___Northern_Leaf_Blight"},
		Symptoms: []string{
			"Long gray-green cigar-shaped lesions on leaves",
			"Lesions turn tan with dark sporulation zones",
			"Lower leaves infected first, spreading upward",
		},
		Treatment: []string{
			"Apply fungicide at first lesions if the hybrid is susceptible",
			"Time applications to protect the ear leaf",
		},
		Prevention: []string{
			"Choose resistant hybrids",
			"Rotate away from corn for one to two years",
			"Bury crop residue with tillage where erosion allows",
		},
	},
	{
		Name:     "Apple Scab",
		Severity: SeverityMedium,
		aliases:  []string{"Apple___Apple_scab"},
		Symptoms: []string{
			"Olive-green velvety spots on leaves and fruit",
			"Spots darken and become corky with age",
			"Distorted or cracked fruit",
			"Premature leaf drop in severe infections",
		},
		Treatment: []string{
			"Apply fungicide from green tip through petal fall",
			"Rake and destroy fallen leaves",
			"Prune to open the canopy for faster drying",
		},
		Prevention: []string{
			"Plant scab-resistant apple varieties",
			"Apply urea to fallen leaves in autumn to speed decomposition",
			"Avoid overhead watering",
		},
	},
	{
		Name:     "Apple Black Rot",
		Severity: SeverityMedium,
		aliases:  []string{"Apple___Black_rot"},
		Symptoms: []string{
			"Purple flecks on leaves expanding to frog-eye spots",
			"Rotting fruit with concentric brown rings",
			"Shriveled black mummified fruit clinging to branches",
			"Sunken reddish cankers on limbs",
		},
		Treatment: []string{
			"Prune out cankers and dead wood during dormancy",
			"Remove mummified fruit from the tree and ground",
			"Apply fungicide during early fruit development",
		},
		Prevention: []string{
			"Maintain tree vigor with proper nutrition",
			"Remove nearby abandoned apple trees",
			"Protect trees from winter injury and sunscald",
		},
	},
	{
		Name:     "Cedar Apple Rust",
		Severity: SeverityLow,
		aliases:  []string{"Apple___Cedar_apple_rust"},
		Symptoms: []string{
			"Bright yellow-orange spots on upper leaf surfaces",
			"Tube-like projections on leaf undersides",
			"Distorted or dropped fruit in heavy infections",
		},
		Treatment: []string{
			"Apply fungicide from pink bud stage through second cover",
			"Remove galls from nearby cedar trees in late winter",
		},
		Prevention: []string{
			"Plant resistant apple varieties",
			"Remove eastern red cedar within a few hundred meters where practical",
		},
	},
	{
		Name:     "Grape Black Rot",
		Severity: SeverityHigh,
		aliases:  []string{"Grape___Black_rot"},
		Symptoms: []string{
			"Tan leaf spots with dark borders and black specks",
			"Berries shrivel into hard black mummies",
			"Purple-black lesions on shoots and tendrils",
		},
		Treatment: []string{
			"Remove mummified berries and infected canes",
			"Apply fungicide from early shoot growth until veraison",
		},
		Prevention: []string{
			"Prune for an open canopy",
			"Cultivate under vines to bury mummies",
			"Avoid overhead irrigation",
		},
	},
	{
		Name:     "Powdery Mildew",
		Severity: SeverityMedium,
		aliases: []string{
			"Cherry___Powdery_mildew",
			"Cherry_(including_sour)___Powdery_mildew",
			"Squash___Powdery_mildew",
		},
		Symptoms: []string{
			"White powdery patches on leaves and shoots",
			"Leaves curl, yellow and drop early",
			"Stunted new growth",
		},
		Treatment: []string{
			"Apply sulfur or potassium bicarbonate sprays at first sign",
			"Remove and discard heavily infected leaves",
			"Improve light penetration with selective pruning",
		},
		Prevention: []string{
			"Plant in full sun with good air movement",
			"Avoid excess nitrogen fertilizer",
			"Choose mildew-resistant varieties",
		},
	},
	{
		Name:     "Bacterial Spot",
		Severity: SeverityMedium,
		aliases: []string{
			"Tomato___Bacterial_spot",
			"Pepper___Bacterial_spot",
			"Peach___Bacterial_spot",
		},
		Symptoms: []string{
			"Small water-soaked spots on leaves turning dark brown",
			"Spots with yellow halos that merge and kill leaf tissue",
			"Raised scabby spots on fruit",
		},
		Treatment: []string{
			"Apply copper-based bactericide early in the epidemic",
			"Remove infected plant material during dry conditions",
			"Avoid working in fields while foliage is wet",
		},
		Prevention: []string{
			"Use certified disease-free seed and transplants",
			"Rotate away from host crops for at least one year",
			"Disinfect stakes and tools between seasons",
		},
	},
	{
		Name:     "Tomato Leaf Mold",
		Severity: SeverityMedium,
		aliases:  []string{"Tomato___Leaf_Mold"},
		Symptoms: []string{
			"Pale yellow spots on upper leaf surfaces",
			"Olive-green velvety mold on leaf undersides",
			"Leaves wither but stay attached to the stem",
		},
		Treatment: []string{
			"Increase ventilation, especially in greenhouses",
			"Remove infected leaves promptly",
			"Apply fungicide where ventilation cannot be improved",
		},
		Prevention: []string{
			"Keep relative humidity below 85 percent",
			"Water early so foliage dries before night",
			"Grow resistant varieties in protected culture",
		},
	},
	{
		Name:     "Tomato Septoria Leaf Spot",
		Severity: SeverityMedium,
		aliases:  []string{"Tomato___Septoria_leaf_spot"},
		Symptoms: []string{
			"Many small circular spots with gray centers and dark edges",
			"Tiny black specks in the center of mature spots",
			"Progressive defoliation from the bottom of the plant",
		},
		Treatment: []string{
			"Remove infected lower leaves",
			"Apply fungicide at 7-10 day intervals",
			"Mulch to prevent soil splash",
		},
		Prevention: []string{
			"Rotate tomatoes on a three-year cycle",
			"Control solanaceous weeds near the garden",
			"Clean up all plant debris in autumn",
		},
	},
	{
		Name:     "Tomato Yellow Leaf Curl Virus",
		Severity: SeverityHigh,
		aliases:  []string{"Tomato___Yellow_Leaf_Curl_Virus"},
		Symptoms: []string{
			"Upward curling and yellowing of leaf edges",
			"Severely stunted plants with bushy appearance",
			"Flower drop and little to no fruit set",
		},
		Treatment: []string{
			"Remove and bag infected plants to limit spread",
			"Control whitefly vectors with insecticidal soap or oil",
		},
		Prevention: []string{
			"Grow virus-resistant varieties",
			"Use reflective mulches to repel whiteflies",
			"Screen greenhouse vents against whiteflies",
		},
	},
	{
		Name:     "Tomato Mosaic Virus",
		Severity: SeverityHigh,
		aliases:  []string{"Tomato___mosaic_virus"},
		Symptoms: []string{
			"Mottled light and dark green pattern on leaves",
			"Distorted fern-like young leaves",
			"Internal browning of fruit",
		},
		Treatment: []string{
			"Remove infected plants entirely, roots included",
			"Wash hands and disinfect tools after contact",
		},
		Prevention: []string{
			"Use virus-free certified seed",
			"Do not handle plants after using tobacco products",
			"Control aphids and other sap-feeding insects",
		},
	},
	{
		Name:     "Strawberry Leaf Scorch",
		Severity: SeverityLow,
		aliases:  []string{"Strawberry___Leaf_scorch"},
		Symptoms: []string{
			"Small dark purple spots scattered across leaves",
			"Spots merge until leaves look scorched and dry",
			"Curled brittle leaf edges",
		},
		Treatment: []string{
			"Mow or remove old foliage after harvest",
			"Apply fungicide during early bloom if disease was severe last year",
		},
		Prevention: []string{
			"Plant in well-drained soil with full sun",
			"Renovate beds annually",
			"Set plants at recommended spacing",
		},
	},
	{
		Name:     "Citrus Greening",
		Severity: SeverityHigh,
		aliases:  []string{"Orange___Haunglongbing", "Orange___Haunglongbing_(Citrus_greening)"},
		Symptoms: []string{
			"Blotchy asymmetric yellow mottling on leaves",
			"Small lopsided bitter fruit that stays green at the bottom",
			"Twig dieback and thinning canopy",
		},
		Treatment: []string{
			"No cure exists; remove infected trees to protect groves",
			"Control Asian citrus psyllid populations",
			"Support remaining trees with enhanced nutrition",
		},
		Prevention: []string{
			"Buy trees only from certified nurseries",
			"Inspect new growth for psyllids regularly",
			"Report suspected infections to agricultural authorities",
		},
	},
	{
		Name:     "Healthy",
		Severity: SeverityLow,
		aliases: []string{
			"Tomato___healthy", "Potato___healthy", "Apple___healthy",
			"Corn___healthy", "Grape___healthy", "Pepper___healthy",
			"healthy",
		},
		Symptoms: []string{
			"No visible disease symptoms detected",
			"Leaf color and structure appear normal",
		},
		Treatment: []string{
			"No treatment needed",
			"Continue current care routine",
		},
		Prevention: []string{
			"Keep monitoring plants weekly for early signs of disease",
			"Maintain balanced watering and fertilization",
			"Remove weeds that can host pests and pathogens",
		},
	},
}
