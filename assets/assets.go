package assets

import (
	"embed"

	"github.com/parcelrush/blackfriday/shared/leveldata"
)

// WarehouseMap is the path of the default layout inside MapFS.
const WarehouseMap = "maps/warehouse.tmx"

//go:embed all:maps
var MapFS embed.FS

// LoadWarehouse parses the embedded default layout.
func LoadWarehouse() (*leveldata.Warehouse, error) {
	return leveldata.LoadWarehouse(MapFS, WarehouseMap)
}
