package listing

// defaults is the gallery as published. Order is display order.
var defaults = []Listing{
	{
		ID:       1,
		Image:    "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&q=80",
		Price:    925000,
		Address:  "40 Plaster House Road",
		Location: "Southbury, CT",
		Beds:     4,
		Baths:    3,
		Sqft:     3200,
		Status:   StatusActive,
		Featured: true,
		Link:     "https://www.compass.com/homedetails/40-Plaster-House-Rd-Southbury-CT-06488/17YU2Z_pid/",
	},
	{
		ID:       2,
		Image:    "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&q=80",
		Price:    1850000,
		Address:  "Modern Estate",
		Location: "Chappaqua, NY",
		Beds:     5,
		Baths:    4,
		Sqft:     4500,
		Status:   StatusActive,
		Link:     "#",
	},
	{
		ID:       3,
		Image:    "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&q=80",
		Price:    2400000,
		Address:  "Tudor Revival",
		Location: "Bedford, NY",
		Beds:     6,
		Baths:    5,
		Sqft:     5800,
		Status:   StatusActive,
		Featured: true,
		Link:     "#",
	},
	{
		ID:       4,
		Image:    "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800&q=80",
		Price:    1250000,
		Address:  "Contemporary Home",
		Location: "Armonk, NY",
		Beds:     4,
		Baths:    3,
		Sqft:     3600,
		Status:   StatusPending,
		Link:     "#",
	},
	{
		ID:       5,
		Image:    "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&q=80",
		Price:    3200000,
		Address:  "Waterfront Estate",
		Location: "Rye, NY",
		Beds:     7,
		Baths:    6,
		Sqft:     7200,
		Status:   StatusActive,
		Featured: true,
		Link:     "#",
	},
	{
		ID:       6,
		Image:    "https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde?w=800&q=80",
		Price:    195000,
		Address:  "68 East Hartsdale Ave",
		Location: "Hartsdale, NY",
		Beds:     1,
		Baths:    1,
		Sqft:     850,
		Status:   StatusActive,
		Link:     "https://www.compass.com/homedetails/68-E-Hartsdale-Ave-Unit-2G-Hartsdale-NY-10530/15RZKH_pid/",
	},
	{
		ID:       7,
		Image:    "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800&q=80",
		Price:    1650000,
		Address:  "Colonial Estate",
		Location: "Scarsdale, NY",
		Beds:     5,
		Baths:    4,
		Sqft:     4200,
		Status:   StatusSold,
		Link:     "#",
	},
	{
		ID:       8,
		Image:    "https://images.unsplash.com/photo-1580587771525-78b9dba3b914?w=800&q=80",
		Price:    2850000,
		Address:  "Georgian Manor",
		Location: "Greenwich, CT",
		Beds:     6,
		Baths:    5,
		Sqft:     6100,
		Status:   StatusActive,
		Featured: true,
		Link:     "#",
	},
}

// Defaults returns a copy of the compiled-in listings.
func Defaults() []Listing {
	out := make([]Listing, len(defaults))
	copy(out, defaults)
	return out
}
