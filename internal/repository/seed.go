package repository

import "github.com/Lixing-Zhang/kart-storefront/internal/models"

// DefaultProducts returns the seeded house menu in canonical order
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:           "masala-chai",
			Name:         "Masala Chai",
			Description:  "Milk tea simmered with cardamom, ginger, cloves and black pepper.",
			Price:        40,
			Category:     models.CategoryBeverages,
			Rating:       4.8,
			ReviewCount:  320,
			IsVeg:        true,
			IsGlutenFree: true,
			SpiceLevel:   models.SpiceMild,
			Tags:         []string{"hot", "bestseller"},
		},
		{
			ID:           "traditional-shikanji",
			Name:         "Traditional Shikanji",
			Description:  "Fresh lemon cooler with roasted cumin and black salt.",
			Price:        60,
			Category:     models.CategoryBeverages,
			Rating:       4.5,
			ReviewCount:  150,
			IsVeg:        true,
			IsVegan:      true,
			IsJain:       true,
			IsGlutenFree: true,
			SpiceLevel:   models.SpiceNone,
			Tags:         []string{"cold", "summer special"},
		},
		{
			ID:           "mango-lassi",
			Name:         "Mango Lassi",
			Description:  "Thick yogurt smoothie blended with Alphonso mango pulp.",
			Price:        90,
			Category:     models.CategoryBeverages,
			Rating:       4.7,
			ReviewCount:  280,
			IsVeg:        true,
			IsJain:       true,
			IsGlutenFree: true,
			SpiceLevel:   models.SpiceNone,
			Tags:         []string{"cold", "sweet"},
		},
		{
			ID:           "paneer-tikka",
			Name:         "Paneer Tikka",
			Description:  "Cottage cheese cubes marinated in spiced yogurt and charred in the tandoor.",
			Price:        220,
			Category:     models.CategoryAppetizers,
			Rating:       4.6,
			ReviewCount:  410,
			IsVeg:        true,
			IsGlutenFree: true,
			SpiceLevel:   models.SpiceMedium,
			Tags:         []string{"tandoor", "bestseller"},
		},
		{
			ID:          "samosa-chaat",
			Name:        "Samosa Chaat",
			Description: "Crushed samosas topped with chickpea curry, yogurt and tamarind chutney.",
			Price:       120,
			Category:    models.CategoryAppetizers,
			Rating:      4.4,
			ReviewCount: 260,
			IsVeg:       true,
			SpiceLevel:  models.SpiceMedium,
			Tags:        []string{"street food"},
		},
		{
			ID:          "chicken-65",
			Name:        "Chicken 65",
			Description: "Deep fried chicken tossed with curry leaves and red chillies.",
			Price:       260,
			Category:    models.CategoryAppetizers,
			Rating:      4.3,
			ReviewCount: 190,
			SpiceLevel:  models.SpiceHot,
			Tags:        []string{"non-veg", "spicy"},
		},
		{
			ID:           "dal-makhani",
			Name:         "Dal Makhani",
			Description:  "Black lentils slow cooked overnight with butter and cream.",
			Price:        240,
			Category:     models.CategoryMainCourse,
			Rating:       4.7,
			ReviewCount:  350,
			IsVeg:        true,
			IsGlutenFree: true,
			SpiceLevel:   models.SpiceMild,
			Tags:         []string{"signature"},
		},
		{
			ID:          "chole-bhature",
			Name:        "Chole Bhature",
			Description: "Spiced chickpea curry served with two fluffy fried breads.",
			Price:       180,
			Category:    models.CategoryMainCourse,
			Rating:      4.5,
			ReviewCount: 230,
			IsVeg:       true,
			SpiceLevel:  models.SpiceMedium,
			Tags:        []string{"punjabi"},
		},
	}
}
