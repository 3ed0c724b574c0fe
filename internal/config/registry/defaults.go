package registry

// Tags used by the built-in toggles.
const (
	TagPlacement = "placement"
	TagClicking  = "clicking"
	TagRendering = "rendering"
	TagInventory = "inventory"
	TagMovement  = "movement"
)

// Defaults returns the built-in feature toggle table in declaration order.
func Defaults() []Definition {
	return []Definition{
		Toggle("carpetFlexibleBlockPlacement", false, "LMENU,C",
			"If enabled, then the flexible block placement uses the protocol\nimplemented in the recent carpet mod versions").
			WithDisplayName("Carpet protocol Flexible Placement").
			WithTags(TagPlacement),
		Toggle("fastPlacementRememberOrientation", true, "LSHIFT,X,F",
			"If enabled, then the fast placement mode will always remember\nthe orientation of the first block you place.\nWithout this, the orientation will only be remembered\nwith the flexible placement enabled and active.").
			WithDisplayName("Fast Placement Remember Orientation").
			WithTags(TagPlacement),
		Toggle("rememberFlexibleFromClick", true, "LSHIFT,X,L",
			"If enabled, then the flexible block placement status will be remembered\nfrom the first placed block, as long as the use key is held down.").
			WithDisplayName("Remember Flexible Orientation From First Click").
			WithTags(TagPlacement),
		Toggle("tweakAfterClicker", false, "X,C",
			"Enables a \"after clicker\" tweak, which does automatic right clicks on the just-placed block.\nUseful for example for Repeaters (setting the delay).").
			WithTags(TagPlacement, TagClicking),
		Toggle("tweakFastBlockPlacement", false, "X,F",
			"Enables fast/convenient block placement when moving the cursor over new blocks").
			WithTags(TagPlacement),
		Toggle("tweakFastLeftClick", false, "X,Y",
			"Enables automatic fast left clicking while holding down the attack button (left click).\nThe number of clicks per game tick is set in the Generic configs.").
			WithTags(TagClicking),
		Toggle("tweakFastRightClick", false, "X,U",
			"Enables automatic fast right clicking while holding down the use button (right click).\nThe number of clicks per game tick is set in the Generic configs.").
			WithTags(TagClicking),
		Toggle("tweakFlexibleBlockPlacement", false, "X,L",
			"Enables placing blocks in different orientations while holding down the keybind").
			WithTags(TagPlacement),
		Toggle("tweakGammaOverride", false, "X,G",
			"Overrides the video settings gamma value with the one set in the Generic configs").
			WithTags(TagRendering),
		Toggle("tweakHandRestock", false, "X,E",
			"Enables swapping a new stack to the main or the offhand when the previous stack runs out").
			WithTags(TagInventory),
		Toggle("tweakHotbarSwap", false, "X,H",
			"Enables the hotbar swapping feature").
			WithTags(TagInventory),
		Toggle("tweakInventoryPreview", false, "X,I",
			"Enables an inventory preview while having the cursor over a block\nwith an inventory and holding the configured modifier key for it").
			WithTags(TagInventory, TagRendering),
		Toggle("tweakItemUnstackingProtection", false, "X,P",
			"If enabled, then items configured in Generic -> unstackingItems won't be\nallowed to spill out when using. This is meant for example to\nprevent throwing buckets into lava when filling them.").
			WithTags(TagInventory),
		Toggle("tweakLavaVisibility", false, "X,A",
			"If enabled and the player has a Respiration helmet and/or Wather Breathing\nactive, the lava fog is greatly reduced").
			WithTags(TagRendering),
		Toggle("tweakMovementKeysLast", false, "X,M",
			"If enabled, then opposite movement keys won't cancel each other,\nbut instead the last pressed key is the active input").
			WithTags(TagMovement),
		Toggle("tweakPlayerInventoryPeek", false, "X,Q",
			"Enables a player inventory peek/preview, while holding the\nconfigured modifier key for it").
			WithTags(TagInventory, TagRendering),
		Toggle("tweakNoFallingBlockEntityRendering", false, "",
			"If enabled, then falling block entities won't be rendered at all").
			WithTags(TagRendering),
		Toggle("tweakNoItemSwitchRenderCooldown", false, "",
			"If true, then there won't be any cooldown/equip animation\nwhen switching the held item or using the item.").
			WithTags(TagRendering),
		Toggle("tweakNoLightUpdates", false, "X,N",
			"If enabled, disables client-side light updates").
			WithTags(TagRendering),
		Toggle("tweakPermanentSneak", false, "LSHIFT,X,S",
			"If enabled, the player will be sneaking the entire time").
			WithTags(TagMovement),
		Toggle("tweakPickBeforePlace", false, "X,K",
			"If enabled, then before each block placement, the same block\nis switched to hand that you are placing against").
			WithTags(TagPlacement, TagInventory),
		Toggle("tweakEmptyShulkerBoxesStack", false, "",
			"Enables empty Shulker Boxes stacking up to 64").
			WithTags(TagInventory),
		Toggle("tweakSwapAlmostBrokenTools", false, "X,W",
			"If enabled, then any damageable items held in the hand that are\nabout to break will be swapped to fresh ones").
			WithTags(TagInventory),
	}
}
