package domain

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mouse-blink/hellfloat/internal/adapter"
	"github.com/mouse-blink/hellfloat/internal/controller"
	"github.com/mouse-blink/hellfloat/internal/domain/encoding"
	"github.com/mouse-blink/hellfloat/internal/domain/rng"
	m "github.com/mouse-blink/hellfloat/internal/model"
)

// ErrVerificationFailed is returned by Verify when the artifact does not
// match what its seed and target count produce.
var ErrVerificationFailed = errors.New("verification failed")

// GenerateArgs contains arguments for building and writing a corpus.
type GenerateArgs struct {
	Target        int
	Seed          uint64
	Output        m.Path
	WriteManifest bool
}

// InspectArgs contains arguments for showing a plan without generating it.
type InspectArgs struct {
	Target int
	Seed   uint64
}

// VerifyArgs contains arguments for checking an existing artifact.
// Target and Seed are used only when the artifact has no manifest.
type VerifyArgs struct {
	Output  m.Path
	Target  int
	Seed    uint64
	Threads int
}

// Workflow defines the interface for corpus operations.
type Workflow interface {
	Generate(args GenerateArgs) error
	Inspect(args InspectArgs) error
	Verify(args VerifyArgs) error
}

type workflow struct {
	fs        adapter.CorpusFSAdapter
	manifests adapter.ManifestStore
	ui        controller.UI
	assembler Assembler
	log       *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fs adapter.CorpusFSAdapter,
	manifests adapter.ManifestStore,
	ui controller.UI,
	assembler Assembler,
	log *zap.Logger,
) Workflow {
	return &workflow{
		fs:        fs,
		manifests: manifests,
		ui:        ui,
		assembler: assembler,
		log:       log,
	}
}

// Inspect shows how the target would be partitioned.
func (w *workflow) Inspect(args InspectArgs) error {
	return w.ui.DisplayPlan(w.plan(args.Target, args.Seed), nil)
}

// Generate builds the corpus and writes it atomically to args.Output. When
// requested, a manifest describing the run is written next to it; otherwise
// any manifest already there is removed.
func (w *workflow) Generate(args GenerateArgs) error {
	plan := w.plan(args.Target, args.Seed)
	if err := w.ui.DisplayPlan(plan, nil); err != nil {
		return err
	}

	corpus, err := w.assembler.Assemble(plan, rng.New(plan.Seed), w.ui.DisplayProgress)
	if err != nil {
		return fmt.Errorf("assemble corpus: %w", err)
	}

	res, err := w.fs.WriteAtomic(args.Output, func(out io.Writer) error {
		_, err := encoding.Encode(out, corpus.Values)
		return err
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", args.Output, err)
	}

	w.log.Info("artifact written",
		zap.String("path", string(args.Output)),
		zap.Int("values", corpus.Len()),
		zap.Int64("bytes", res.Bytes),
		zap.String("sha256", res.SHA256),
	)

	if args.WriteManifest {
		manifest := m.Manifest{
			Version:     m.ManifestVersion,
			Output:      args.Output,
			Seed:        plan.Seed,
			Target:      plan.Target,
			Bytes:       res.Bytes,
			SHA256:      res.SHA256,
			RandomDraws: corpus.RandomDraws,
			Generators:  plan.Specs,
		}

		if err := w.manifests.SaveManifest(args.Output, manifest); err != nil {
			return fmt.Errorf("save manifest: %w", err)
		}

		w.log.Debug("manifest written", zap.String("path", string(adapter.ManifestPath(args.Output))))
	} else {
		// A manifest left by an earlier run would describe a different artifact.
		if err := w.manifests.DeleteManifest(args.Output); err != nil {
			return err
		}
	}

	w.ui.DisplaySummary(m.Summary{
		Output:  args.Output,
		Written: corpus.Len(),
		Bytes:   res.Bytes,
		SHA256:  res.SHA256,
		Plan:    plan,
		Classes: ClassCounts(corpus.Values),
	})

	return nil
}

// Verify re-reads args.Output and checks it against a regenerated corpus.
// The manifest, when present, supplies the seed and target count and the
// expected hash.
func (w *workflow) Verify(args VerifyArgs) error {
	target, seed := args.Target, args.Seed
	wantHash, wantBytes := "", int64(0)
	fromManifest := false

	manifest, err := w.manifests.LoadManifest(args.Output)

	switch {
	case err == nil:
		fromManifest = true
		target, seed = manifest.Target, manifest.Seed
		wantHash, wantBytes = manifest.SHA256, manifest.Bytes
	case errors.Is(err, adapter.ErrManifestNotFound):
		w.log.Warn("no manifest, verifying against configured seed and count",
			zap.String("path", string(args.Output)))
	default:
		return fmt.Errorf("load manifest: %w", err)
	}

	plan := w.plan(target, seed)
	if err := w.ui.DisplayPlan(plan, nil); err != nil {
		return err
	}

	info, err := w.fs.FileInfo(args.Output)
	if err != nil {
		return fmt.Errorf("stat %s: %w", args.Output, err)
	}

	lines, terminated, err := w.fs.ReadLines(args.Output)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Output, err)
	}

	corpus, err := w.assembler.Assemble(plan, rng.New(plan.Seed), nil)
	if err != nil {
		return fmt.Errorf("regenerate corpus: %w", err)
	}

	result := m.VerifyResult{
		Output:       args.Output,
		Lines:        len(lines),
		Expected:     plan.Target,
		FromManifest: fromManifest,
		HashOK:       true,
		Issues:       NewVerifier(args.Threads).Check(lines, corpus.Values),
	}

	if !terminated && len(lines) > 0 {
		last := len(lines)
		result.Issues = append(result.Issues, m.VerifyIssue{Line: last, Text: lines[last-1], Reason: "missing trailing newline"})
	}

	switch {
	case wantHash == "":
	case info.Size() != wantBytes:
		result.HashOK = false
	default:
		got, err := w.fs.HashFile(args.Output)
		if err != nil {
			return fmt.Errorf("hash %s: %w", args.Output, err)
		}

		result.HashOK = got == wantHash
	}

	w.log.Info("artifact verified",
		zap.String("path", string(args.Output)),
		zap.Int("lines", result.Lines),
		zap.Int("issues", len(result.Issues)),
		zap.Bool("sha256_ok", result.HashOK),
	)

	w.ui.DisplayVerification(result)

	if !result.OK() {
		return ErrVerificationFailed
	}

	return nil
}

func (w *workflow) plan(target int, seed uint64) m.Plan {
	if target < 0 {
		w.log.Warn("negative target count treated as zero", zap.Int("target", target))
	}

	plan := NewPlan(target, seed)

	w.log.Info("plan computed",
		zap.Int("target", plan.Target),
		zap.Uint64("seed", plan.Seed),
		zap.Int("generators", len(plan.Specs)),
	)

	return plan
}
