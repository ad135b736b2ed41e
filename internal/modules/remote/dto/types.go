package dto

type SyncResult struct {
	Collection string `json:"collection"`
	Records    int    `json:"records"`
}

type CollectionStatus struct {
	Collection string `json:"collection"`
	Local      int    `json:"local"`
	Remote     int    `json:"remote"`
	InSync     bool   `json:"inSync"`
	Error      string `json:"error,omitempty"`
}

type Status struct {
	Enabled     bool               `json:"enabled"`
	Collections []CollectionStatus `json:"collections"`
}
