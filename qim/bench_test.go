package qim_test

import (
	"testing"

	"github.com/katalvlaran/chaosmark/bitcodec"
	"github.com/katalvlaran/chaosmark/qim"
)

// BenchmarkEmbedSubband_4k quantizes a 4096-coefficient subband.
func BenchmarkEmbedSubband_4k(b *testing.B) {
	subband := randSignal(4096, 5)
	vector, err := bitcodec.Encode("watermark")
	if err != nil {
		b.Fatalf("Encode failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = qim.EmbedSubband(subband, vector, 0.5); err != nil {
			b.Fatalf("EmbedSubband failed: %v", err)
		}
	}
}

// BenchmarkDetect_4k classifies a 4096-coefficient subband.
func BenchmarkDetect_4k(b *testing.B) {
	subband := randSignal(4096, 6)
	vector, err := bitcodec.Encode("watermark")
	if err != nil {
		b.Fatalf("Encode failed: %v", err)
	}
	table, err := qim.EmbedSubband(subband, vector, 0.5)
	if err != nil {
		b.Fatalf("EmbedSubband failed: %v", err)
	}
	marked := extractWatermarked(table)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = qim.Detect(marked, 0.5); err != nil {
			b.Fatalf("Detect failed: %v", err)
		}
	}
}
