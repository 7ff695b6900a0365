package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRolePlayer UserRole = "player"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRolePlayer:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// AssetType identifies the kind of media an asset holds.
type AssetType string

const (
	AssetTypeImage AssetType = "image"
	AssetTypeSound AssetType = "sound"
	AssetTypeVideo AssetType = "video"
)

func (t AssetType) String() string { return string(t) }

func (t AssetType) IsValid() bool {
	switch t {
	case AssetTypeImage, AssetTypeSound, AssetTypeVideo:
		return true
	}
	return false
}

// SoundKind selects how a sound asset is generated: spoken narration of the
// description (text-to-speech) or ambient music matching it.
type SoundKind string

const (
	SoundKindTTS   SoundKind = "tts"
	SoundKindMusic SoundKind = "music"
)

func (k SoundKind) String() string { return string(k) }

func (k SoundKind) IsValid() bool {
	switch k {
	case SoundKindTTS, SoundKindMusic:
		return true
	}
	return false
}
