package decoder

// ErrorCorrection is the QR error-correction level encoded in a symbol
type ErrorCorrection string

const (
	ECLevelL ErrorCorrection = "L"
	ECLevelM ErrorCorrection = "M"
	ECLevelQ ErrorCorrection = "Q"
	ECLevelH ErrorCorrection = "H"
)

// Metadata holds decoder-reported symbol metadata
type Metadata struct {
	ErrorCorrection ErrorCorrection `json:"error_correction"`
}

// Result is a successful decode outcome
type Result struct {
	Content  string    `json:"content"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

// ParseErrorCorrection parses a decoder-reported level string. Unparseable
// values are treated as no metadata provided.
func ParseErrorCorrection(s string) (ErrorCorrection, bool) {
	switch s {
	case "L":
		return ECLevelL, true
	case "M":
		return ECLevelM, true
	case "Q":
		return ECLevelQ, true
	case "H":
		return ECLevelH, true
	default:
		return "", false
	}
}

// errorCorrectionFromFormatBits maps the 2-bit QR format field reported by
// quirc-lineage decoders to an error-correction level.
func errorCorrectionFromFormatBits(bits int) ErrorCorrection {
	switch bits {
	case 0:
		return ECLevelM
	case 1:
		return ECLevelL
	case 2:
		return ECLevelH
	case 3:
		return ECLevelQ
	default:
		return ECLevelM
	}
}
