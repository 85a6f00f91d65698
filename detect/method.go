package detect

import "fmt"

// Method selects the ECG R-peak detection algorithm.
type Method int

const (
	MethodPanTompkins Method = iota
	MethodHamilton
	MethodChristov
	MethodEngelseZeelenberg
	MethodMovingAverage
)

var methodNames = map[Method]string{
	MethodPanTompkins:       "pan-tompkins",
	MethodHamilton:          "hamilton",
	MethodChristov:          "christov",
	MethodEngelseZeelenberg: "engelse-zeelenberg",
	MethodMovingAverage:     "moving-average",
}

// String returns the canonical method name.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod maps a method name to its Method value.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("detect: unknown ECG method %q", name)
}
