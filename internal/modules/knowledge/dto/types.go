package dto

type ListInput struct {
	Type      string
	StartDate string
	EndDate   string
}

type DocumentOutput struct {
	ID           int
	FilePath     string
	DocumentType string
	Source       string
	Tags         string
}

type UploadInput struct {
	FilePath string
	Source   string
	Tags     string
}

type UploadOutput struct {
	Msg string
}

type UpdateInput struct {
	ID     int
	Source string
	Tags   string
}

type BatchDeleteInput struct {
	IDs []int
}

type BatchDeleteOutput struct {
	Msg string
}
