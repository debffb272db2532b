package dto

type FeedOutput struct {
	ID  int
	URL string
}

type AddInput struct {
	URL string
}
