package constants

// 视图状态常量
const (
	ViewHome     = "home"
	ViewShop     = "shop"
	ViewGenerate = "generate"
)

// 分类常量
const (
	CategoryShonen  = "shonen"
	CategoryShojo   = "shojo"
	CategorySeinen  = "seinen"
	CategoryMecha   = "mecha"
	CategoryFantasy = "fantasy"
	CategoryCustom  = "custom"

	// CategoryAll 分类筛选哨兵值：返回全部商品
	CategoryAll = "all"
)

// 生成请求状态常量
const (
	GenerationStatusRequesting = "requesting"
	GenerationStatusReady      = "ready"
	GenerationStatusFailed     = "failed"
)

// 画质档位常量
const (
	QualityStandard = "standard"
	QualityHD       = "hd"
)

// 聊天消息角色常量
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// 队列与任务常量
const (
	QueueDefault         = "default"
	TaskPosterSynthesize = "generation:synthesize"
	TaskSessionExpire    = "session:expire"
)

// 站点常量
const (
	SiteName        = "AniMall"
	SiteCurrency    = "USD"
	SessionIDHeader = "X-Session-ID"
)

// AssistantSystemInstruction 导购助手系统提示词
const AssistantSystemInstruction = `You are "Kai", a helpful and enthusiastic anime shop assistant for "AniMall".
Your goal is to help users find the perfect anime poster or suggest ideas for them to generate using our custom AI tool.
You are knowledgeable about anime genres (Shonen, Shojo, Seinen, Mecha, Isekai, etc.).
Keep your responses concise, friendly, and slightly "otaku" but professional.
If asked about poster prices, they range from $19.99 to $29.99.
`

// AssistantGreeting 会话首条助手问候语
const AssistantGreeting = "Konnichiwa! I'm Kai. Looking for something specific or need a recommendation?"

// AssistantFallbackReply 助手远程调用失败时的兜底回复
const AssistantFallbackReply = "I'm having trouble connecting to the network right now."

// AssistantEmptyReply 助手返回空内容时的兜底回复
const AssistantEmptyReply = "I'm sorry, I couldn't generate a response."

// 生成流程文案常量
const (
	GenerationFailedMessage        = "Failed to generate image. Please try again."
	CustomDescriptionFallback      = "Exclusive limited edition anime art poster."
	CustomDescriptionEmptyFallback = "A stunning visual masterpiece for your collection."
)
