package services

// UOMOptions returns the list of Unit of Measurement options offered on
// invoice line items.
var UOMOptions = []string{
	"Kg",
	"MT",
	"Nos",
	"Sqm",
	"Rmt",
	"Lot",
	"Set",
	"Lumpsum",
}

// HSNOptions lists the HSN codes RNS bills against. Steel structures and
// fabrication job work cover nearly everything the shop ships.
var HSNOptions = []string{
	"94060019", // prefabricated steel buildings
	"73089090", // structural steel fabrication
	"99889290", // job work on metal
}
