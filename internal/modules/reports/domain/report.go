package domain

// KeywordReport holds the backend's ranked keyword list, order preserved.
type KeywordReport struct {
	Keywords []string
}

// ClusterReport carries either the cluster mapping or the backend's error
// text, never both.
type ClusterReport struct {
	Clusters map[string][]string
	Err      string
}

func (r ClusterReport) Failed() bool {
	return r.Err != ""
}
