package dma

type DMAServiceAPI interface {
	GetAllDMAs() ([]DMA, error)
	GetDMAByID(id uint) (*DMA, []string, error)
}
