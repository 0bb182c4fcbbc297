package scraper

// Storefront products list response. Only the fields the scraper reads.

type productsResponse struct {
	Status   string       `json:"status"`
	Message  string       `json:"message"`
	Total    *int         `json:"total"`
	Products []productDTO `json:"products"`
	Filters  *filtersDTO  `json:"filters"`
}

type productDTO struct {
	Title           string              `json:"title"`
	Descr           string              `json:"descr"`
	Text            string              `json:"text"`
	Brand           string              `json:"brand"`
	Characteristics []characteristicDTO `json:"characteristics"`
}

type characteristicDTO struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

type filtersDTO struct {
	Filters []filterDTO `json:"filters"`
}

type filterDTO struct {
	Label  string           `json:"label"`
	Values []filterValueDTO `json:"values"`
}

type filterValueDTO struct {
	Value *string `json:"value"`
	Count *int    `json:"count"`
}
