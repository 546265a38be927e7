package sdfat

type Attr uint8

const (
	AttrReadOnly  Attr = 0x01
	AttrHidden    Attr = 0x02
	AttrSystem    Attr = 0x04
	AttrVolumeId  Attr = 0x08
	AttrDirectory Attr = 0x10
	AttrArchive   Attr = 0x20
	AttrLongName  Attr = AttrReadOnly | AttrHidden | AttrSystem | AttrVolumeId
)

func (a Attr) IsDir() bool {
	return a&AttrDirectory == AttrDirectory
}

func (a Attr) IsVolumeId() bool {
	return a&AttrVolumeId == AttrVolumeId
}

func (a Attr) IsHidden() bool {
	return a&AttrHidden == AttrHidden
}

func (a Attr) IsSystem() bool {
	return a&AttrSystem == AttrSystem
}

func (a Attr) IsReadOnly() bool {
	return a&AttrReadOnly == AttrReadOnly
}
