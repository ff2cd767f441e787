package command

// HelpText is the reply to /start
const HelpText = `Welcome to your Clothing Tracker Bot! Here are the commands you can use:

/add [item] - Add a new clothing item
/move [item] - Move an item between houses
/list - List all items and their locations
/list_my_house - List items at your house
/list_gf_house - List items at your girlfriend's house
/delete [item] - Remove an item from tracking`

// Reply templates
const (
	MsgAdded    = `Added "%s" to your house!`
	MsgMoved    = `Moved "%s" to %s`
	MsgDeleted  = `Deleted "%s" from tracking`
	MsgNotFound = `Item "%s" not found`
	MsgUsage    = "Please specify an item name after /%s"

	MsgListHeader           = "Your clothing items:\n\n"
	MsgListLine             = "- %s: %s (last moved: %s)\n"
	MsgListEmpty            = "No items being tracked yet!"
	MsgLocationHeader       = "Items at %s:\n\n"
	MsgLocationLine         = "- %s (last moved: %s)\n"
	MsgLocationEmpty        = "No items at %s yet!"
	MsgMyHouseTitle         = "your house"
	MsgGirlfriendHouseTitle = "girlfriend's house"

	MsgErrAdding     = "Error adding item"
	MsgErrMoving     = "Error moving item"
	MsgErrDeleting   = "Error deleting item"
	MsgErrRetrieving = "Error retrieving items"
)

// DateLayout renders timestamps as a US short date
const DateLayout = "1/2/2006"
