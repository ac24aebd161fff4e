package models

// City is a static directory entry; the platform does not store these.
type City struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

type CityDirectory struct {
	Cities   []City `json:"cities"`
	Villages []City `json:"villages"`
}

func Cities() CityDirectory {
	return CityDirectory{
		Cities: []City{
			{ID: "delhi", Name: "Delhi", State: "Delhi"},
			{ID: "mumbai", Name: "Mumbai", State: "Maharashtra"},
			{ID: "bangalore", Name: "Bangalore", State: "Karnataka"},
			{ID: "chennai", Name: "Chennai", State: "Tamil Nadu"},
			{ID: "kolkata", Name: "Kolkata", State: "West Bengal"},
			{ID: "hyderabad", Name: "Hyderabad", State: "Telangana"},
			{ID: "pune", Name: "Pune", State: "Maharashtra"},
			{ID: "ahmedabad", Name: "Ahmedabad", State: "Gujarat"},
			{ID: "jaipur", Name: "Jaipur", State: "Rajasthan"},
			{ID: "lucknow", Name: "Lucknow", State: "Uttar Pradesh"},
		},
		Villages: []City{
			{ID: "himatnagar", Name: "Himatnagar", State: "Gujarat"},
			{ID: "mehsana", Name: "Mehsana", State: "Gujarat"},
			{ID: "palanpur", Name: "Palanpur", State: "Gujarat"},
			{ID: "nadiad", Name: "Nadiad", State: "Gujarat"},
			{ID: "anand", Name: "Anand", State: "Gujarat"},
			{ID: "junagadh", Name: "Junagadh", State: "Gujarat"},
			{ID: "porbandar", Name: "Porbandar", State: "Gujarat"},
			{ID: "gandhidham", Name: "Gandhidham", State: "Gujarat"},
			{ID: "bhuj", Name: "Bhuj", State: "Gujarat"},
			{ID: "morbi", Name: "Morbi", State: "Gujarat"},
		},
	}
}
