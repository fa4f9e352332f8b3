package domain

import "fmt"

type DatasetName string

const (
	DatasetBattles   DatasetName = "battles"
	DatasetEquipment DatasetName = "equipment"
	DatasetPersonnel DatasetName = "personnel"
	DatasetBoundary  DatasetName = "boundary"
)

type Dataset struct {
	Name        DatasetName
	Path        string // local path or s3://bucket/key
	Description string
}

func (d Dataset) String() string {
	return fmt.Sprintf("%s:%s", d.Name, d.Path)
}
