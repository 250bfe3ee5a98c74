package advisor

// PlaceRecord is the soil/crop advisory for one district of one state.
type PlaceRecord struct {
	State            string   `yaml:"state"`
	District         string   `yaml:"district"`
	SoilType         string   `yaml:"soil_type"`
	RecommendedCrops []string `yaml:"recommended_crops"`
	SoilDescription  string   `yaml:"soil_description"`
}

// District pairs a lowercase match key with its record.
type District struct {
	Name   string      `yaml:"name"`
	Record PlaceRecord `yaml:"record"`
}

// Region is one state with its districts in definition order. Slices, not
// maps: a region-only match resolves to the first district in table order,
// so iteration order is part of the contract.
type Region struct {
	Name      string     `yaml:"name"`
	Districts []District `yaml:"districts"`
}

var regions = []Region{
	{
		Name: "punjab",
		Districts: []District{
			{Name: "ludhiana", Record: PlaceRecord{
				State:            "Punjab",
				District:         "Ludhiana",
				SoilType:         "Loamy Alluvial Soil",
				RecommendedCrops: []string{"गेहूं", "धान", "मक्का", "सरसों", "आलू"},
				SoilDescription:  "पंजाब की मिट्टी मुख्यतः Alluvial Soil (खादर व बांगर) है, मिश्रित लोटी (loamy), अच्छी उपजाऊ मिट्टी जो गेहूँ, धान आदि खेती के लिए उपयुक्त है।",
			}},
			{Name: "sangrur", Record: PlaceRecord{
				State:            "Punjab",
				District:         "Sangrur",
				SoilType:         "Loamy Alluvial Soil",
				RecommendedCrops: []string{"गेहूं", "धान", "कपास", "गन्ना"},
				SoilDescription:  "संगरूर जिले की मिट्टी उपजाऊ खादर मिट्टी है जो कृषि के लिए अत्यंत उपयुक्त है।",
			}},
			{Name: "bathinda", Record: PlaceRecord{
				State:            "Punjab",
				District:         "Bathinda",
				SoilType:         "Sandy Loam Alluvial",
				RecommendedCrops: []string{"कपास", "गेहूं", "धान", "मक्का"},
				SoilDescription:  "बठिंडा की मिट्टी रेतीली दोमट है जो कपास और अनाज की फसलों के लिए अच्छी है।",
			}},
		},
	},
	{
		Name: "uttar pradesh",
		Districts: []District{
			{Name: "ghazipur", Record: PlaceRecord{
				State:            "Uttar Pradesh",
				District:         "Ghazipur",
				SoilType:         "Silt-Loam, Clay-Loam",
				RecommendedCrops: []string{"गेहूं", "धान", "गन्ना", "दलहन", "तिलहन"},
				SoilDescription:  "गाजीपुर की मिट्टी Silt-Loam, Loam, Clay-Loam प्रकार की है जो माध्यम रूप से उपजाऊ है और विभिन्न फसलों के लिए उपयुक्त है।",
			}},
			{Name: "prayagraj", Record: PlaceRecord{
				State:            "Uttar Pradesh",
				District:         "Prayagraj",
				SoilType:         "Mixed Alluvial",
				RecommendedCrops: []string{"गेहूं", "धान", "अरहर", "चना", "सरसों"},
				SoilDescription:  "प्रयागराज (इलाहाबाद) की मिट्टी मिक्स है - जमुना खड्डर व alluvial, गंगा low land, कुछ क्षेत्रों में sodic मिट्टी भी है।",
			}},
		},
	},
	{
		Name: "bihar",
		Districts: []District{
			{Name: "patna", Record: PlaceRecord{
				State:            "Bihar",
				District:         "Patna",
				SoilType:         "Karail-Kewal Soil",
				RecommendedCrops: []string{"धान", "गेहूं", "मक्का", "दलहन"},
				SoilDescription:  "पटना की मिट्टी Karail-Kewal प्रकार की भारी क्ले मिट्टी है जो धान और अन्य अनाज की फसलों के लिए उपयुक्त है।",
			}},
			{Name: "gaya", Record: PlaceRecord{
				State:            "Bihar",
				District:         "Gaya",
				SoilType:         "Karail-Kewal Clay",
				RecommendedCrops: []string{"धान", "गेहूं", "दलहन", "तिलहन"},
				SoilDescription:  "गया की मिट्टी भारी clay मिट्टी है जो जलभराव वाले क्षेत्रों में पाई जाती है।",
			}},
		},
	},
}

// lookupPlace scans regions in table order: first region whose name occurs
// in the input, then first of its districts that also occurs. A region-only
// match returns the region's first district. When no region name matched,
// a second pass scans every district across all regions so a district name
// alone still resolves. Returns nil when nothing matched.
func (a *Advisor) lookupPlace(message string) *PlaceRecord {
	for _, region := range a.regions {
		if !contains(message, region.Name) {
			continue
		}
		for i := range region.Districts {
			if contains(message, region.Districts[i].Name) {
				return &region.Districts[i].Record
			}
		}
		if len(region.Districts) > 0 {
			return &region.Districts[0].Record
		}
	}
	for _, region := range a.regions {
		for i := range region.Districts {
			if contains(message, region.Districts[i].Name) {
				return &region.Districts[i].Record
			}
		}
	}
	return nil
}
