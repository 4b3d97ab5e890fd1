package timeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"aafkit/internal/aaf"
	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/resolver"
	"aafkit/internal/aaf/types"
	"aafkit/internal/logging"
)

// ErrNoComposition reports a file without a top-level CompositionMob.
var ErrNoComposition = errors.New("no top-level composition")

// Interpret walks the top-level CompositionMob of f and builds its
// editorial model. Interpret only reads f, so it may run any number of
// times against the same file.
func Interpret(ctx context.Context, f *aaf.File, opts Options) (*Model, error) {
	if f == nil || f.Root == nil {
		return nil, errors.New("timeline: file is not open")
	}
	in := newInterpreter(f, opts)
	if err := in.run(ctx); err != nil {
		return nil, err
	}
	return in.model, nil
}

type essenceKey struct {
	mob  types.MobID
	slot uint32
}

type interpreter struct {
	file   *aaf.File
	opts   Options
	logger *slog.Logger
	diag   *aaferr.Diagnostics

	model *Model
	ctx   walkContext

	haveTimecode bool
	audioByKey   map[essenceKey]int
	videoByKey   map[essenceKey]int
	dropped      int
}

func newInterpreter(f *aaf.File, opts Options) *interpreter {
	runID := opts.RunID
	logger := logging.NewComponentLogger(opts.Logger, "timeline")
	if runID != "" {
		logger = logger.With(logging.String(logging.FieldRunID, runID))
	}
	diag := opts.Diagnostics
	if diag == nil {
		diag = f.Diagnostics()
	}

	product := f.Identification.ProductName
	if v := f.Identification.ProductVersionString; v != "" && product != "" {
		product += " " + v
	}
	return &interpreter{
		file:   f,
		opts:   opts,
		logger: logger,
		diag:   diag,
		model: &Model{
			RunID:   runID,
			File:    f.Path,
			Product: product,
			Vendor:  f.Vendor.String(),
			Timecode: Timecode{
				FPS:      25,
				EditRate: types.Rational{Numerator: 25, Denominator: 1},
			},
		},
		audioByKey: make(map[essenceKey]int),
		videoByKey: make(map[essenceKey]int),
	}
}

func (in *interpreter) run(ctx context.Context) error {
	var top *resolver.Object
	for _, mob := range in.file.MobsOf(types.ClassCompositionMob) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !in.isTopLevel(mob) {
			continue
		}
		if top != nil {
			in.reportAt(slog.LevelError, mob, "composition ignored",
				aaferr.Unsupported(mob.Path(), "more than one top-level CompositionMob"))
			continue
		}
		top = mob
		in.parseCompositionMob(mob)
	}
	if top == nil {
		return aaferr.Wrap(aaferr.ErrMissingRequiredProperty, "timeline", "select composition", in.file.Path, ErrNoComposition)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	in.finish()

	in.logger.Info("timeline interpreted",
		logging.String(logging.FieldEventType, "timeline_interpreted"),
		logging.String("composition", in.model.Composition),
		logging.String("vendor", in.model.Vendor),
		logging.Int("audio_tracks", len(in.model.AudioTracks)),
		logging.Int("video_tracks", len(in.model.VideoTracks)),
		logging.Int("clips", in.model.ClipCount()),
		logging.Int("audio_essences", len(in.model.AudioEssences)),
		logging.Int("video_essences", len(in.model.VideoEssences)),
		logging.Int("dropped", in.dropped),
	)
	return nil
}

// isTopLevel selects TopLevel compositions. Without the Edit Protocol a
// composition lacking a usage code qualifies too.
func (in *interpreter) isTopLevel(mob *resolver.Object) bool {
	usage, err := mob.AUID(types.PIDMobUsageCode)
	switch {
	case err == nil:
		return usage == types.UsageTopLevel
	case aaferr.IsAbsent(err):
		return !in.file.IsEditProtocol()
	default:
		in.report(mob, "usage code unreadable", err)
		return false
	}
}

func (in *interpreter) parseCompositionMob(mob *resolver.Object) {
	in.trace(mob)
	if name, err := mob.Text(types.PIDMobName); err == nil {
		in.model.Composition = name
	}
	in.parseUserComments(mob)

	slots, err := mob.Collection(types.PIDMobSlots)
	if err != nil {
		in.drop(mob, need(err))
		return
	}
	for _, slot := range slots {
		in.ctx = walkContext{}
		if err := in.parseMobSlot(slot); err != nil {
			in.drop(slot, err)
		}
	}
}

func (in *interpreter) parseUserComments(mob *resolver.Object) {
	if !mob.Has(types.PIDMobUserComments) {
		return
	}
	values, err := mob.Collection(types.PIDMobUserComments)
	if err != nil {
		in.report(mob, "user comments unreadable", err)
		return
	}
	for _, tv := range values {
		name, err := tv.Text(types.PIDTaggedValueName)
		if err != nil {
			in.report(tv, "comment skipped", need(err))
			continue
		}
		ind, err := tv.Indirect(types.PIDTaggedValueValue)
		if err != nil {
			in.report(tv, "comment skipped", need(err))
			continue
		}
		text, err := ind.Text()
		if err != nil {
			in.report(tv, "comment skipped", err)
			continue
		}
		in.model.Comments = append(in.model.Comments, Comment{Name: name, Text: text})
	}
}

func (in *interpreter) parseMobSlot(slot *resolver.Object) error {
	in.trace(slot)
	segment, err := slot.Strong(types.PIDMobSlotSegment)
	if err != nil {
		return need(err)
	}
	mob := slot.Parent

	switch {
	case slot.IsA(types.ClassTimelineMobSlot):
		rate, err := slot.Rational(types.PIDTimelineMobSlotEditRate)
		if err != nil {
			return need(err)
		}
		switch {
		case mob.IsA(types.ClassCompositionMob):
			return in.parseCompositionSlot(slot, segment, rate)
		case mob.IsA(types.ClassMasterMob):
			return in.component(segment)
		case mob.IsA(types.ClassSourceMob):
			return in.parseSourceMobSlot(slot, rate)
		default:
			return aaferr.Unsupported(slot.Path(), "MobSlot owned by "+mob.Class.Label())
		}
	case slot.IsA(types.ClassEventMobSlot):
		rate, err := slot.Rational(types.PIDEventMobSlotEditRate)
		if err != nil {
			return need(err)
		}
		in.model.MarkerEditRate = rate
		return in.component(segment)
	default:
		return aaferr.Unsupported(slot.Path(), slot.Class.Label())
	}
}

func (in *interpreter) parseCompositionSlot(slot, segment *resolver.Object, rate types.Rational) error {
	dataDef, err := in.file.DataDefinition(segment, types.PIDComponentDataDefinition)
	if err != nil {
		return need(err)
	}
	name, _ := slot.Text(types.PIDMobSlotSlotName)

	switch {
	case types.IsSound(dataDef):
		if !in.ctx.derivation {
			number := len(in.model.AudioTracks) + 1
			if n, err := slot.Uint32(types.PIDMobSlotPhysicalTrackNumber); err == nil {
				number = int(n)
			}
			track, ok := in.model.AudioTrack(number)
			if !ok {
				track = &Track{Kind: KindAudio, Number: number}
				in.model.AudioTracks = append(in.model.AudioTracks, track)
			}
			track.Name = name
			track.EditRate = rate
			in.ctx.track = track
		}
		return in.component(segment)

	case types.IsTimecode(dataDef):
		return in.component(segment)

	case types.IsPicture(dataDef):
		if !in.ctx.derivation {
			if len(in.model.VideoTracks) > 0 {
				return aaferr.Unsupported(slot.Path(), "more than one video track")
			}
			number := 1
			if n, err := slot.Uint32(types.PIDMobSlotPhysicalTrackNumber); err == nil {
				number = int(n)
			}
			track := &Track{Kind: KindVideo, Number: number, Name: name, EditRate: rate}
			in.model.VideoTracks = append(in.model.VideoTracks, track)
			in.ctx.videoTrack = track
		}
		return in.component(segment)

	default:
		return aaferr.Unsupported(slot.Path(), "slot data definition "+types.DefinitionName(dataDef))
	}
}

// parseSourceMobSlot copies the slot origin onto the essence being built.
func (in *interpreter) parseSourceMobSlot(slot *resolver.Object, rate types.Rational) error {
	e := in.ctx.essence
	if e == nil {
		e = in.ctx.videoEssence
	}
	if e == nil {
		return aaferr.Wrap(aaferr.ErrReferenceResolution, "timeline", "source mob slot", slot.Path()+": no essence in progress", nil)
	}
	origin, err := slot.Int64(types.PIDTimelineMobSlotOrigin)
	if err != nil {
		return need(err)
	}
	e.TimeReference = origin
	e.SlotEditRate = rate
	return nil
}

// need turns an absent property into a missing-required error for
// properties the walk cannot do without.
func need(err error) error {
	if err != nil && aaferr.IsAbsent(err) {
		return fmt.Errorf("%w: %w", aaferr.ErrMissingRequiredProperty, err)
	}
	return err
}

func label(obj *resolver.Object) string {
	if obj == nil || obj.Class == nil {
		return ""
	}
	return obj.Class.Label()
}

// drop reports a branch that was abandoned.
func (in *interpreter) drop(obj *resolver.Object, err error) {
	in.dropped++
	in.report(obj, "timeline branch dropped", err)
}

// report logs err at the level its kind maps to and records it unless it
// only notes an absent optional property.
func (in *interpreter) report(obj *resolver.Object, msg string, err error) {
	level := slog.LevelError
	switch aaferr.Classify(err) {
	case aaferr.KindUnsupported:
		level = slog.LevelWarn
	case aaferr.KindAbsent:
		level = slog.LevelDebug
	}
	in.reportAt(level, obj, msg, err)
}

func (in *interpreter) reportAt(level slog.Level, obj *resolver.Object, msg string, err error) {
	if err == nil {
		return
	}
	path := ""
	if obj != nil {
		path = obj.Path()
	}
	if level > slog.LevelDebug {
		in.diag.Record(level, path, err)
	}
	in.logger.Log(context.Background(), level, msg,
		logging.String(logging.FieldEventType, "timeline_diagnostic"),
		logging.String("path", path),
		logging.String("class", label(obj)),
		logging.String("error_kind", string(aaferr.Classify(err))),
		logging.Error(err),
	)
}

// warn records a fallback that keeps the branch alive.
func (in *interpreter) warn(obj *resolver.Object, msg string) {
	path := ""
	if obj != nil {
		path = obj.Path()
	}
	in.diag.Add(aaferr.Diagnostic{Level: slog.LevelWarn, Kind: aaferr.KindOther, Path: path, Message: msg})
	logging.WarnWithContext(in.logger, msg, "timeline_fallback",
		logging.String("path", path),
		logging.String("class", label(obj)),
		logging.String(logging.FieldImpact, "default value used"),
	)
}

func (in *interpreter) trace(obj *resolver.Object) {
	if !in.opts.Trace {
		return
	}
	in.logger.Debug("visit",
		logging.String("path", obj.Path()),
		logging.String("class", label(obj)),
	)
}
