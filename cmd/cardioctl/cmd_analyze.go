package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-cardio/artefact"
	"github.com/cwbudde/algo-cardio/detect"
	"github.com/cwbudde/algo-cardio/internal/config"
	"github.com/cwbudde/algo-cardio/internal/log"
	"github.com/cwbudde/algo-cardio/report"
	"github.com/cwbudde/algo-cardio/rr"
)

var (
	analyzeInput   string
	analyzeSignal  string
	analyzeSFreq   float64
	analyzeMethod  string
	analyzeOutput  string
	analyzeCorrect bool

	analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Compute an HRV summary from a recording",
		Long: `Reads a recording (one sample per line, comma or whitespace
separated), extracts the RR series and prints the time, frequency and
nonlinear domain metrics.`,
		RunE: runAnalyze,
	}
)

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeInput, "input", "", "input file with one sample per line")
	f.StringVar(&analyzeSignal, "signal", "", "signal kind: ecg, ppg, rr_ms, rr_s, peaks, peaks_idx")
	f.Float64Var(&analyzeSFreq, "sfreq", 0, "sampling rate of ecg/ppg input, Hz")
	f.StringVar(&analyzeMethod, "method", "", "ECG detection method")
	f.StringVar(&analyzeOutput, "output", "", "output format: table, json, yaml")
	f.BoolVar(&analyzeCorrect, "correct", false, "correct RR artefacts before analysis")

	_ = analyzeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := log.WithComponent("analyze")

	// Flags left unset fall back to the config file.
	if analyzeSignal == "" {
		analyzeSignal = cfg.Analyze.Signal
	}

	if analyzeSFreq == 0 {
		analyzeSFreq = cfg.Analyze.SFreq
	}

	if analyzeMethod == "" {
		analyzeMethod = cfg.Analyze.Method
	}

	if analyzeOutput == "" {
		analyzeOutput = cfg.Analyze.Output
	}

	if err := config.ValidateSignal(analyzeSignal); err != nil {
		return err
	}

	format, err := report.ParseFormat(analyzeOutput)
	if err != nil {
		return err
	}

	values, err := readSeries(analyzeInput)
	if err != nil {
		return err
	}

	logger.Debug().Int("samples", len(values)).Str("input", analyzeInput).Msg("recording loaded")

	rrMs, err := toRRMillis(values, analyzeSignal, analyzeSFreq, analyzeMethod)
	if err != nil {
		return err
	}

	logger.Info().
		Str("signal", analyzeSignal).
		Int("intervals", len(rrMs)).
		Msg("RR series extracted")

	if analyzeCorrect {
		corrected, counts, err := artefact.CorrectRR(rrMs)
		if err != nil {
			return err
		}

		logger.Info().
			Int("ectopic", counts.Ectopic).
			Int("missed", counts.Missed).
			Int("extra", counts.Extra).
			Int("long", counts.Long).
			Int("short", counts.Short).
			Msg("artefacts corrected")

		rrMs = corrected
	}

	summary, err := report.Compute(rrMs, report.DefaultConfig())
	if err != nil {
		return err
	}

	out, err := report.Render(summary, format)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(append(out, '\n'))

	return err
}

// toRRMillis turns the raw input into an RR series in milliseconds.
func toRRMillis(values []float64, signal string, sfreq float64, method string) ([]float64, error) {
	switch signal {
	case "ecg":
		m, err := detect.ParseMethod(method)
		if err != nil {
			return nil, err
		}

		dcfg := detect.DefaultECGConfig()
		dcfg.SFreq = sfreq
		dcfg.Method = m

		_, peaks, err := detect.ECGPeaks(values, dcfg)
		if err != nil {
			return nil, err
		}

		s, err := rr.FromPeaks(peaks)
		if err != nil {
			return nil, err
		}

		return s.Millis(), nil
	case "ppg":
		dcfg := detect.DefaultPPGConfig()
		dcfg.SFreq = sfreq

		_, peaks, err := detect.PPGPeaks(values, dcfg)
		if err != nil {
			return nil, err
		}

		s, err := rr.FromPeaks(peaks)
		if err != nil {
			return nil, err
		}

		return s.Millis(), nil
	default:
		f, err := rr.ParseFormat(signal)
		if err != nil {
			return nil, err
		}

		s, err := rr.From(values, f)
		if err != nil {
			return nil, err
		}

		return s.Millis(), nil
	}
}

// readSeries parses a numeric recording: values separated by newlines,
// commas or whitespace. Blank lines and #-comments are skipped.
func readSeries(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var values []float64

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		for _, field := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		}) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}

			values = append(values, v)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no samples found in %s", path)
	}

	return values, nil
}
