package logx

// NopSensitiveDataMasker leaves logged payloads untouched. It is the
// default masker of httpx.LoggingRoundTripper.
type NopSensitiveDataMasker struct{}

func NewNopSensitiveDataMasker() NopSensitiveDataMasker {
	return NopSensitiveDataMasker{}
}

func (NopSensitiveDataMasker) Mask(payload []byte) []byte {
	return payload
}
