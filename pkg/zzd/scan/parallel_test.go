package scan_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ZedeN1/zzdPlot/pkg/zzd/scan"
)

// buildContent generates n diagnostic stanzas with free text between
// them, deterministically, so boundary placement varies across chunk
// sizes without randomness.
func buildContent(n int) []byte {
	var b strings.Builder
	b.WriteString(" Flood Modeller diagnostic output\n Simulation started\n\n")
	for i := 0; i < n; i++ {
		t := float64(i) * 0.25
		switch i % 5 {
		case 0:
			fmt.Fprintf(&b, " Model time %10.3fhrs:   Timestep     5.00secs\n", t)
			fmt.Fprintf(&b, " *** warning W%d *** at label: NODE_%d\n", 2000+i%40, i%13)
			b.WriteString("     Unit detail text\n")
		case 1:
			fmt.Fprintf(&b, "!!! Poor model convergence at time %10.3fhrs\n", t)
			b.WriteString("    iteration limit reached\n")
			fmt.Fprintf(&b, "     MAX DQ= %8.4f at FLOW_%d      MAX DH= %8.4f at HEAD_%d\n",
				float64(i%17)*0.01, i%7, float64(i%11)*0.003, i%5)
		case 2:
			fmt.Fprintf(&b, " Model time %10.3fhrs:   Timestep     5.00secs\n", t)
			b.WriteString(" nothing to report this step\n")
		case 3:
			fmt.Fprintf(&b, " Model time %10.3fhrs:   Timestep     5.00secs\n", t)
			fmt.Fprintf(&b, " *** note N%d *** at label: RES_%d\n", 3002+i%20, i%3)
		default:
			fmt.Fprintf(&b, " mass balance at step %d within tolerance\n", i)
			b.WriteString(" free text line that matches nothing at all\n")
		}
		if i%9 == 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString(" Simulation complete\n")
	return []byte(b.String())
}

func sequential(t *testing.T, src *scan.Source) []scan.Record {
	t.Helper()
	var recs []scan.Record
	if err := scan.Scan(src, func(r scan.Record) bool {
		recs = append(recs, r)
		return true
	}); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return recs
}

func TestScanParallel_MatchesSequential(t *testing.T) {
	content := buildContent(3000)
	src := scan.FromBytes("gen.zzd", content)
	want := sequential(t, src)
	if len(want) == 0 {
		t.Fatal("generator produced no records")
	}

	for _, chunk := range []int64{64, 512, 4 << 10, 64 << 10, 1 << 20, int64(len(content)) + 1} {
		chunk := chunk
		t.Run(fmt.Sprintf("chunk=%d", chunk), func(t *testing.T) {
			got, err := scan.ScanParallel(context.Background(), src, scan.Options{ChunkSize: chunk, Workers: 4})
			if err != nil {
				t.Fatalf("ScanParallel: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("parallel scan diverges from sequential (-seq +par):\n%s", diff)
			}
		})
	}
}

func TestScanParallel_HeadlineOffsetsAscend(t *testing.T) {
	src := scan.FromBytes("gen.zzd", buildContent(500))
	got, err := scan.ScanParallel(context.Background(), src, scan.Options{ChunkSize: 256, Workers: 8})
	if err != nil {
		t.Fatalf("ScanParallel: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Offset <= got[i-1].Offset {
			t.Fatalf("record %d offset %d not after %d", i, got[i].Offset, got[i-1].Offset)
		}
	}
}

func TestScanParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := scan.FromBytes("gen.zzd", buildContent(200))
	_, err := scan.ScanParallel(ctx, src, scan.Options{ChunkSize: 128, Workers: 2})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestScanParallel_Empty(t *testing.T) {
	got, err := scan.ScanParallel(context.Background(), scan.FromBytes("empty.zzd", nil), scan.Options{})
	if err != nil {
		t.Fatalf("ScanParallel: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no records, got %+v", got)
	}
}
