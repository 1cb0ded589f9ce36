package classifier

// Sentinel is the label value meaning "no valid determination". It is data,
// not an error: a classification the model could not make is still a
// successful response.
const Sentinel = "None"

// Result is a classified label triple. Each field is either a concrete
// label from the taxonomy or the Sentinel.
type Result struct {
	Supercategory string `json:"supercategory"`
	Category      string `json:"category"`
	Subcategory   string `json:"subcategory"`
}

// SentinelResult returns a Result with all three fields set to the Sentinel.
func SentinelResult() Result {
	return Result{
		Supercategory: Sentinel,
		Category:      Sentinel,
		Subcategory:   Sentinel,
	}
}
