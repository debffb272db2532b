package dto

type KeywordReportOutput struct {
	Keywords []string
}

type ClusterReportOutput struct {
	Clusters map[string][]string
	Err      string
}
