package dto

type AskInput struct {
	Query string
}

type ResultOutput struct {
	Answer string
	Source string
}
