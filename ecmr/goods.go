package ecmr

import "github.com/aethongr/keystone-api-standard/wire"

// MarksAndNos carries the shipping marks of a consignment item, optionally
// with custom barcodes.
type MarksAndNos struct {
	LogisticsShippingMarksMarking           *string                              `json:"logisticsShippingMarksMarking" validate:"omitempty,min=2,max=512"`
	LogisticsShippingMarksCustomBarcodeList []LogisticsShippingMarksCustomBarcode `json:"logisticsShippingMarksCustomBarcodeList" validate:"omitempty,max=32,dive"`
}

// Fields returns the record's fields in declaration order.
func (m MarksAndNos) Fields() []wire.Field {
	return []wire.Field{
		{Name: "logisticsShippingMarksMarking", Value: wire.Opt(m.LogisticsShippingMarksMarking)},
		{Name: "logisticsShippingMarksCustomBarcodeList", Value: wire.Records(m.LogisticsShippingMarksCustomBarcodeList)},
	}
}

// LogisticsShippingMarksCustomBarcode is a single custom barcode attached
// to a consignment item.
type LogisticsShippingMarksCustomBarcode struct {
	Barcode *string `json:"barcode" validate:"omitempty,min=2,max=35"`
}

// Fields returns the record's fields in declaration order.
func (l LogisticsShippingMarksCustomBarcode) Fields() []wire.Field {
	return []wire.Field{{Name: "barcode", Value: wire.Opt(l.Barcode)}}
}

// NumberOfPackages is the package count of a consignment item.
type NumberOfPackages struct {
	LogisticsPackageItemQuantity *int `json:"logisticsPackageItemQuantity" validate:"omitempty,gte=0,lte=9999"`
}

// Fields returns the record's fields in declaration order.
func (n NumberOfPackages) Fields() []wire.Field {
	return []wire.Field{{Name: "logisticsPackageItemQuantity", Value: wire.Opt(n.LogisticsPackageItemQuantity)}}
}

// MethodOfPacking is the packaging type of a consignment item.
type MethodOfPacking struct {
	LogisticsPackageType *string `json:"logisticsPackageType" validate:"omitempty,min=2,max=35"`
}

// Fields returns the record's fields in declaration order.
func (m MethodOfPacking) Fields() []wire.Field {
	return []wire.Field{{Name: "logisticsPackageType", Value: wire.Opt(m.LogisticsPackageType)}}
}

// NatureOfTheGoods describes the cargo of a consignment item.
type NatureOfTheGoods struct {
	TransportCargoIdentification *string `json:"transportCargoIdentification" validate:"omitempty,min=2,max=512"`
}

// Fields returns the record's fields in declaration order.
func (n NatureOfTheGoods) Fields() []wire.Field {
	return []wire.Field{{Name: "transportCargoIdentification", Value: wire.Opt(n.TransportCargoIdentification)}}
}

// GrossWeightInKg is the gross weight of a consignment item.
type GrossWeightInKg struct {
	SupplyChainConsignmentItemGrossWeight *float64 `json:"supplyChainConsignmentItemGrossWeight" validate:"omitempty,gte=0,lte=99999"`
}

// Fields returns the record's fields in declaration order.
func (g GrossWeightInKg) Fields() []wire.Field {
	return []wire.Field{{Name: "supplyChainConsignmentItemGrossWeight", Value: wire.Opt(g.SupplyChainConsignmentItemGrossWeight)}}
}

// VolumeInM3 is the gross volume of a consignment item.
type VolumeInM3 struct {
	SupplyChainConsignmentItemGrossVolume *float64 `json:"supplyChainConsignmentItemGrossVolume" validate:"omitempty,gte=0,lte=9999"`
}

// Fields returns the record's fields in declaration order.
func (v VolumeInM3) Fields() []wire.Field {
	return []wire.Field{{Name: "supplyChainConsignmentItemGrossVolume", Value: wire.Opt(v.SupplyChainConsignmentItemGrossVolume)}}
}

// Item is one consignment item: marks, packaging, cargo nature, weight and
// volume.
type Item struct {
	MarksAndNos      *MarksAndNos      `json:"marksAndNos" validate:"omitempty"`
	NumberOfPackages *NumberOfPackages `json:"numberOfPackages" validate:"omitempty"`
	MethodOfPacking  *MethodOfPacking  `json:"methodOfPacking" validate:"omitempty"`
	NatureOfTheGoods *NatureOfTheGoods `json:"natureOfTheGoods" validate:"omitempty"`
	GrossWeightInKg  *GrossWeightInKg  `json:"grossWeightInKg" validate:"omitempty"`
	VolumeInM3       *VolumeInM3       `json:"volumeInM3" validate:"omitempty"`
}

// Fields returns the record's fields in declaration order.
func (i Item) Fields() []wire.Field {
	return []wire.Field{
		{Name: "marksAndNos", Value: wire.Opt(i.MarksAndNos)},
		{Name: "numberOfPackages", Value: wire.Opt(i.NumberOfPackages)},
		{Name: "methodOfPacking", Value: wire.Opt(i.MethodOfPacking)},
		{Name: "natureOfTheGoods", Value: wire.Opt(i.NatureOfTheGoods)},
		{Name: "grossWeightInKg", Value: wire.Opt(i.GrossWeightInKg)},
		{Name: "volumeInM3", Value: wire.Opt(i.VolumeInM3)},
	}
}
