package models

// SeedCategories is the bootstrap catalog created once by /seed.
func SeedCategories() []*ServiceCategory {
	return []*ServiceCategory{
		{ID: "home-services", Name: "Home Services", Icon: "Home", Description: "Professional home maintenance and repair services"},
		{ID: "appliance-services", Name: "Appliance Services", Icon: "Refrigerator", Description: "Expert appliance repair and maintenance"},
		{ID: "tech-services", Name: "Tech Services", Icon: "Laptop", Description: "Technology installation and repair services"},
		{ID: "vehicle-services", Name: "Vehicle Services", Icon: "Car", Description: "Vehicle repair and maintenance"},
		{ID: "personal-services", Name: "Personal Services", Icon: "User", Description: "Personal care and wellness services"},
		{ID: "local-services", Name: "Local Services", Icon: "MapPin", Description: "Various local assistance services"},
	}
}

func SeedSubServices() []*SubService {
	return []*SubService{
		// Home Services
		{ID: "plumber", CategoryID: "home-services", Name: "Plumber", Description: "Pipe repairs, leaks, bathroom fittings", Icon: "Wrench"},
		{ID: "electrician", CategoryID: "home-services", Name: "Electrician", Description: "Wiring, switches, electrical repairs", Icon: "Zap"},
		{ID: "carpenter", CategoryID: "home-services", Name: "Carpenter", Description: "Furniture repair, woodwork", Icon: "Hammer"},
		{ID: "painter", CategoryID: "home-services", Name: "Painter", Description: "Wall painting, waterproofing", Icon: "Paintbrush"},
		{ID: "cleaning", CategoryID: "home-services", Name: "Cleaning Service", Description: "Deep cleaning, sanitization", Icon: "Sparkles"},
		{ID: "pest-control", CategoryID: "home-services", Name: "Pest Control", Description: "Termite, cockroach control", Icon: "Bug"},
		// Appliance Services
		{ID: "ac-repair", CategoryID: "appliance-services", Name: "AC Repair", Description: "AC servicing, gas refill, repair", Icon: "Wind"},
		{ID: "fridge-repair", CategoryID: "appliance-services", Name: "Refrigerator Repair", Description: "Fridge repair and servicing", Icon: "Refrigerator"},
		{ID: "washing-machine", CategoryID: "appliance-services", Name: "Washing Machine Repair", Description: "Washing machine servicing", Icon: "WashingMachine"},
		{ID: "ro-service", CategoryID: "appliance-services", Name: "RO Service", Description: "Water purifier servicing", Icon: "Droplets"},
		// Tech Services
		{ID: "mobile-repair", CategoryID: "tech-services", Name: "Mobile Repair", Description: "Screen repair, battery replacement", Icon: "Smartphone"},
		{ID: "laptop-repair", CategoryID: "tech-services", Name: "Laptop Repair", Description: "Laptop servicing and repair", Icon: "Laptop"},
		{ID: "cctv-install", CategoryID: "tech-services", Name: "CCTV Installation", Description: "Security camera setup", Icon: "Camera"},
		{ID: "it-support", CategoryID: "tech-services", Name: "IT Support", Description: "Software, network issues", Icon: "Monitor"},
		// Vehicle Services
		{ID: "bike-repair", CategoryID: "vehicle-services", Name: "Bike Repair", Description: "Two-wheeler servicing", Icon: "Bike"},
		{ID: "car-repair", CategoryID: "vehicle-services", Name: "Car Repair", Description: "Car servicing and repair", Icon: "Car"},
		{ID: "towing", CategoryID: "vehicle-services", Name: "Towing Service", Description: "Vehicle towing assistance", Icon: "Truck"},
		// Personal Services
		{ID: "salon-home", CategoryID: "personal-services", Name: "Salon at Home", Description: "Haircut, grooming at home", Icon: "Scissors"},
		{ID: "fitness", CategoryID: "personal-services", Name: "Fitness Trainer", Description: "Personal training sessions", Icon: "Dumbbell"},
		{ID: "makeup", CategoryID: "personal-services", Name: "Makeup Artist", Description: "Bridal, party makeup", Icon: "Palette"},
		// Local Services
		{ID: "tutor", CategoryID: "local-services", Name: "Home Tutor", Description: "Private tutoring", Icon: "GraduationCap"},
		{ID: "movers", CategoryID: "local-services", Name: "Movers & Packers", Description: "Relocation services", Icon: "Package"},
		{ID: "event-support", CategoryID: "local-services", Name: "Event Support", Description: "Event planning assistance", Icon: "Calendar"},
	}
}
