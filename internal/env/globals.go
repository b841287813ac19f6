package env

import "strings"

// Frontend globals, grouped by where they are defined.
var frontendGroups = []string{
	// third-party libraries
	"$ _ jQuery Spinner Handlebars XDate zxcvbn Intl mixpanel Notification LazyLoad Dropbox SockJS marked",

	// node-based unit tests
	"module",

	// Cocoa <-> JavaScript bridge
	"bridge",

	// index.html
	"page_params",

	// common.js
	"status_classes password_quality",

	// setup.js
	"csrf_token",

	// modules, defined in their respective files
	"compose compose_fade rows hotkeys narrow reload notifications_bar search subs " +
		"composebox_typeahead server_events typeahead_helper notifications hashchange " +
		"invite ui util activity timerender MessageList MessageListView blueslip unread stream_list " +
		"message_edit tab_bar emoji popovers navigate people settings " +
		"avatar feature_flags search_suggestion referral stream_color Dict " +
		"Filter summary admin stream_data muting WinChan muting_ui Socket channel",

	"colorspace",
	"tutorial",
	"templates",
	"alert_words",
	"fenced_code",
	"echo",
	"localstorage",

	// zulip.js
	"all_msg_list home_msg_list narrowed_msg_list current_msg_list get_updates_params " +
		"add_messages " +
		"keep_pointer_in_view unread_messages_read_in_narrow " +
		"respond_to_message recenter_view last_viewport_movement_direction " +
		"scroll_to_selected get_private_message_recipient " +
		"load_old_messages enable_unread_counts " +
		"at_top_of_viewport at_bottom_of_viewport within_viewport " +
		"process_visible_unread_messages mark_messages_as_read viewport " +
		"load_more_messages reset_load_more_status have_scrolled_away_from_top " +
		"maybe_scroll_to_selected recenter_pointer_on_display suppress_scroll_pointer_update " +
		"mark_current_list_as_read message_range message_in_table process_loaded_for_unread " +
		"mark_all_as_read message_unread process_read_messages unread_in_current_view " +
		"fast_forward_pointer recent_subjects unread_subjects " +
		"furthest_read server_furthest_read update_messages " +
		"add_message_metadata " +
		"mark_message_as_read batched_flag_updater " +
		"send_summarize_in_home " +
		"send_summarize_in_stream " +
		"suppress_unread_counts " +
		"msg_metadata_cache " +
		"report_as_received " +
		"insert_new_messages process_message_for_recent_subjects",
}

// FrontendGlobals returns the curated global names valid in browser code.
// Each call returns a new slice.
func FrontendGlobals() []string {
	var names []string
	for _, g := range frontendGroups {
		names = append(names, strings.Fields(g)...)
	}
	return names
}
