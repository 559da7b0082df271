package trailcost

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// ENCODING_VERSION is a version of edge flags layout and semantics. It has to be persisted alongside any serialized graph
const ENCODING_VERSION = 3

const priorityBits = 4

// WayEncoder converts way tags into EdgeFlags. It holds read-only state only and is safe for concurrent use
type WayEncoder struct {
	profile  ProfileConfig
	config   EncoderConfig
	access   AccessDecider
	priority PriorityResolver

	speedEnc       DecimalEncodedValue
	accessFwdEnc   BoolEncodedValue
	accessBwdEnc   BoolEncodedValue
	priorityWayEnc DecimalEncodedValue
}

// NewWayEncoder creates encoder for given profile
//
// Default configuration: speed_bits = 4, speed_factor = 1, block_fords = false
func NewWayEncoder(profile ProfileConfig, options ...func(*EncoderConfig)) (*WayEncoder, error) {
	if err := profile.Validate(); err != nil {
		return nil, errors.Wrap(err, "Bad profile")
	}
	cfg := DefaultEncoderConfig()
	for _, option := range options {
		option(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "Bad encoder configuration")
	}
	shift := cfg.SpeedBits
	enc := &WayEncoder{
		profile:        profile,
		config:         cfg,
		access:         NewAccessDecider(profile, cfg.BlockFords),
		priority:       NewPriorityResolver(profile),
		speedEnc:       newDecimalEncodedValue("speed", 0, cfg.SpeedBits, cfg.SpeedFactor),
		accessFwdEnc:   newBoolEncodedValue("access", shift),
		accessBwdEnc:   newBoolEncodedValue("access_reverse", shift+1),
		priorityWayEnc: newDecimalEncodedValue("priority", shift+2, priorityBits, priorityFactorStep()),
	}
	return enc, nil
}

// Version returns encoding scheme version
func (enc *WayEncoder) Version() int {
	return ENCODING_VERSION
}

// Profile returns profile constants of the encoder
func (enc *WayEncoder) Profile() ProfileConfig {
	return enc.profile
}

// Config returns construction-time configuration
func (enc *WayEncoder) Config() EncoderConfig {
	return enc.config
}

// MaxSpeed returns the largest storable speed
func (enc *WayEncoder) MaxSpeed() float64 {
	return enc.speedEnc.MaxValue()
}

// GetAccess decides whether way should be encoded at all
func (enc *WayEncoder) GetAccess(tags osm.Tags) AccessDecision {
	return enc.access.GetAccess(tags)
}

// Encode decides access for given tags and encodes them into new flags.
// Flags are zero when way is not traversable
func (enc *WayEncoder) Encode(tags osm.Tags, relation PriorityCode) (EdgeFlags, AccessDecision, error) {
	decision := enc.access.GetAccess(tags)
	if decision.CanSkip() {
		return 0, decision, nil
	}
	flags, err := enc.HandleWayTags(0, tags, decision, relation)
	return flags, decision, err
}

// HandleWayTags writes speed, access and priority into flags (in that order).
// Flags are returned unchanged for ACCESS_CAN_SKIP
func (enc *WayEncoder) HandleWayTags(flags EdgeFlags, tags osm.Tags, access AccessDecision, relation PriorityCode) (EdgeFlags, error) {
	if access.CanSkip() {
		return flags, nil
	}
	var err error
	if !access.IsFerry() {
		flags, err = enc.speedEnc.SetDecimal(flags, enc.speedOf(tags))
		if err != nil {
			return flags, errors.Wrap(err, "Can't encode speed")
		}
		flags = enc.accessFwdEnc.SetBool(flags, true)
		flags = enc.accessBwdEnc.SetBool(flags, true)
	} else {
		flags = enc.setClampedSpeed(flags, FerrySpeed(tags, enc.config.SpeedFactor))
	}

	code := enc.priority.Resolve(tags, relation)
	flags, err = enc.priorityWayEnc.SetDecimal(flags, code.Factor())
	if err != nil {
		return flags, errors.Wrap(err, "Can't encode priority")
	}
	return flags, nil
}

// speedOf returns terrain speed for given tags. It has no side effects and is used by slope correction as well
func (enc *WayEncoder) speedOf(tags osm.Tags) float64 {
	return enc.profile.baseSpeed(tags.Find("sac_scale"))
}

// setClampedSpeed stores speed limited by the storable range and opens both directions.
// Speed which would be quantized to zero is stored as zero
func (enc *WayEncoder) setClampedSpeed(flags EdgeFlags, speed float64) EdgeFlags {
	switch {
	case speed < enc.config.SpeedFactor/2 || math.IsNaN(speed):
		flags = enc.speedEnc.SetRaw(flags, 0)
	default:
		if max := enc.speedEnc.MaxValue(); speed > max {
			speed = max
		}
		// Speed is in range already
		flags, _ = enc.speedEnc.SetDecimal(flags, speed)
	}
	flags = enc.accessFwdEnc.SetBool(flags, true)
	return enc.accessBwdEnc.SetBool(flags, true)
}

// SetSpeed rewrites speed field of flags
func (enc *WayEncoder) SetSpeed(flags EdgeFlags, speed float64) (EdgeFlags, error) {
	return enc.speedEnc.SetDecimal(flags, speed)
}

// Speed returns stored speed (km/h)
func (enc *WayEncoder) Speed(flags EdgeFlags) float64 {
	return enc.speedEnc.GetDecimal(flags)
}

// IsAccessible returns access flag for forward (reverse == false) or backward direction
func (enc *WayEncoder) IsAccessible(flags EdgeFlags, reverse bool) bool {
	if reverse {
		return enc.accessBwdEnc.GetBool(flags)
	}
	return enc.accessFwdEnc.GetBool(flags)
}

// SetAccess rewrites access flag for given direction
func (enc *WayEncoder) SetAccess(flags EdgeFlags, reverse bool, value bool) EdgeFlags {
	if reverse {
		return enc.accessBwdEnc.SetBool(flags, value)
	}
	return enc.accessFwdEnc.SetBool(flags, value)
}

// Priority returns stored priority code
func (enc *WayEncoder) Priority(flags EdgeFlags) PriorityCode {
	return PriorityCode(enc.priorityWayEnc.GetRaw(flags))
}

// PriorityFactor returns stored priority factor
func (enc *WayEncoder) PriorityFactor(flags EdgeFlags) float64 {
	return enc.Priority(flags).Factor()
}

// String returns persisted identity of the encoder, e.g. "hiking|calibration=standard|speed_bits=4|speed_factor=1|block_fords=false|version=3"
func (enc *WayEncoder) String() string {
	return enc.Descriptor().String()
}

// Descriptor returns persisted identity of the encoder
func (enc *WayEncoder) Descriptor() EncoderDescriptor {
	return EncoderDescriptor{
		Profile:     enc.profile.Profile(),
		Calibration: enc.profile.CalibrationName(),
		Config:      enc.config,
		Version:     ENCODING_VERSION,
	}
}

// CheckVersion checks that persisted version matches running encoder one
func (enc *WayEncoder) CheckVersion(stored int) error {
	if stored != ENCODING_VERSION {
		return errors.Wrapf(ErrIncompatibleEncodingVersion, "stored version is %d, encoder version is %d: graph has to be re-encoded", stored, ENCODING_VERSION)
	}
	return nil
}

// CheckCompatible checks that graph encoded with persisted descriptor could be read by the encoder without re-encoding
func (enc *WayEncoder) CheckCompatible(stored EncoderDescriptor) error {
	if err := enc.CheckVersion(stored.Version); err != nil {
		return err
	}
	current := enc.Descriptor()
	if stored != current {
		return errors.Wrapf(ErrIncompatibleEncodingVersion, "stored encoder '%s' differs from running '%s': graph has to be re-encoded", stored, current)
	}
	return nil
}

// EncoderDescriptor is persisted identity of WayEncoder
type EncoderDescriptor struct {
	Profile     ProfileType
	Calibration string
	Config      EncoderConfig
	Version     int
}

func (d EncoderDescriptor) String() string {
	return fmt.Sprintf("%s|calibration=%s|speed_bits=%d|speed_factor=%s|block_fords=%t|version=%d",
		d.Profile,
		d.Calibration,
		d.Config.SpeedBits,
		strconv.FormatFloat(d.Config.SpeedFactor, 'f', -1, 64),
		d.Config.BlockFords,
		d.Version,
	)
}

// ParseEncoderDescriptor parses value produced by EncoderDescriptor.String()
func ParseEncoderDescriptor(text string) (EncoderDescriptor, error) {
	parts := strings.Split(strings.TrimSpace(text), "|")
	profile, err := ParseProfileType(parts[0])
	if err != nil {
		return EncoderDescriptor{}, errors.Wrap(err, "Can't parse encoder descriptor")
	}
	d := EncoderDescriptor{Profile: profile, Config: DefaultEncoderConfig(), Version: -1}
	for _, part := range parts[1:] {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return EncoderDescriptor{}, fmt.Errorf("bad encoder descriptor part '%s'", part)
		}
		switch kv[0] {
		case "calibration":
			d.Calibration = kv[1]
		case "speed_bits":
			v, err := strconv.ParseUint(kv[1], 10, 32)
			if err != nil {
				return EncoderDescriptor{}, errors.Wrap(err, "Can't parse speed_bits")
			}
			d.Config.SpeedBits = uint(v)
		case "speed_factor":
			v, err := strconv.ParseFloat(kv[1], 64)
			if err != nil {
				return EncoderDescriptor{}, errors.Wrap(err, "Can't parse speed_factor")
			}
			d.Config.SpeedFactor = v
		case "block_fords":
			v, err := strconv.ParseBool(kv[1])
			if err != nil {
				return EncoderDescriptor{}, errors.Wrap(err, "Can't parse block_fords")
			}
			d.Config.BlockFords = v
		case "version":
			v, err := strconv.Atoi(kv[1])
			if err != nil {
				return EncoderDescriptor{}, errors.Wrap(err, "Can't parse version")
			}
			d.Version = v
		default:
			return EncoderDescriptor{}, fmt.Errorf("unknown encoder descriptor key '%s'", kv[0])
		}
	}
	if d.Version < 0 {
		return EncoderDescriptor{}, errors.Wrap(ErrIncompatibleEncodingVersion, "encoder descriptor has no version")
	}
	return d, nil
}
