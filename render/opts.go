package render

// Resolver maps an entity id to a display string. The second result is
// meaningful only for the role resolver, where it is an optional CSS color
// value; the empty string selects DefaultRoleColor. All other resolvers
// ignore it. Resolvers cannot fail: a caller whose lookup misses should
// choose its own fallback text.
type Resolver func(id string) (display, extra string)

type RenderOption func(*renderState)

// EmojiResolver maps an emoji file id (numeric id plus .gif or .png
// suffix) to the path used as the image source.
func EmojiResolver(r Resolver) RenderOption {
	return func(rs *renderState) { rs.emoji = r }
}

// UserResolver maps a user id to the mentioned user's name.
func UserResolver(r Resolver) RenderOption {
	return func(rs *renderState) { rs.user = r }
}

// RoleResolver maps a role id to the role's name and optional color.
func RoleResolver(r Resolver) RenderOption {
	return func(rs *renderState) { rs.role = r }
}

// ChannelResolver maps a channel id to the channel's name.
func ChannelResolver(r Resolver) RenderOption {
	return func(rs *renderState) { rs.channel = r }
}
